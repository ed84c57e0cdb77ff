package database

// TestInsertDownload tests download metadata insertion.
func (s *StoreTestSuite) TestInsertDownload() {
	downloadRecord, err := s.store.InsertDownload("User guide", "guide.pdf", "1757608919239-guide.pdf", 1024, "application/pdf", nil)
	s.NoError(err)
	s.NotZero(downloadRecord.ID)
	s.Equal("User guide", downloadRecord.Name)
	s.Equal("guide.pdf", downloadRecord.FileName)
	s.Equal("1757608919239-guide.pdf", downloadRecord.FilePath)
	s.Equal(int64(1024), downloadRecord.FileSize)
	s.Equal("application/pdf", downloadRecord.MimeType)
	s.Nil(downloadRecord.CategoryID)
}

// TestInsertDownloadWithCategory tests the category pre-check and join.
func (s *StoreTestSuite) TestInsertDownloadWithCategory() {
	systemRecord, err := s.store.CreateSystem("DHIS2", "https://dhis2.example.org")
	s.Require().NoError(err)
	categoryRecord, err := s.store.CreateCategory("manuals", systemRecord.ID)
	s.Require().NoError(err)

	downloadRecord, err := s.store.InsertDownload("User guide", "guide.pdf", "1757608919239-guide.pdf", 1024, "application/pdf", &categoryRecord.ID)
	s.NoError(err)
	s.Require().NotNil(downloadRecord.CategoryID)
	s.Equal(categoryRecord.ID, *downloadRecord.CategoryID)
	s.Equal("manuals", downloadRecord.CategoryName)

	unknown := int64(9999)
	_, err = s.store.InsertDownload("Other", "other.pdf", "1757608919240-other.pdf", 10, "application/pdf", &unknown)
	s.ErrorIs(err, ErrCategoryNotFound)
}

// TestInsertDownloadValidation tests required fields.
func (s *StoreTestSuite) TestInsertDownloadValidation() {
	_, err := s.store.InsertDownload("", "guide.pdf", "key", 1, "application/pdf", nil)
	s.ErrorIs(err, ErrValidation)

	_, err = s.store.InsertDownload("User guide", "", "key", 1, "application/pdf", nil)
	s.ErrorIs(err, ErrValidation)

	_, err = s.store.InsertDownload("User guide", "guide.pdf", "", 1, "application/pdf", nil)
	s.ErrorIs(err, ErrValidation)
}

// TestGetDownload tests retrieval by ID.
func (s *StoreTestSuite) TestGetDownload() {
	created, err := s.store.InsertDownload("User guide", "guide.pdf", "1757608919239-guide.pdf", 1024, "application/pdf", nil)
	s.Require().NoError(err)

	downloadRecord, err := s.store.GetDownload(created.ID)
	s.NoError(err)
	s.Equal(created.FilePath, downloadRecord.FilePath)

	_, err = s.store.GetDownload(created.ID + 1000)
	s.ErrorIs(err, ErrDownloadNotFound)
}

// TestListDownloadsFiltered tests newest-first ordering and category filtering.
func (s *StoreTestSuite) TestListDownloadsFiltered() {
	systemRecord, err := s.store.CreateSystem("DHIS2", "https://dhis2.example.org")
	s.Require().NoError(err)
	categoryRecord, err := s.store.CreateCategory("manuals", systemRecord.ID)
	s.Require().NoError(err)

	first, err := s.store.InsertDownload("first", "a.pdf", "1-a.pdf", 1, "application/pdf", &categoryRecord.ID)
	s.Require().NoError(err)
	second, err := s.store.InsertDownload("second", "b.pdf", "2-b.pdf", 2, "application/pdf", nil)
	s.Require().NoError(err)

	all, err := s.store.ListDownloads(nil)
	s.NoError(err)
	s.Require().Len(all, 2)
	s.Equal(second.ID, all[0].ID)
	s.Equal(first.ID, all[1].ID)

	filtered, err := s.store.ListDownloads(&categoryRecord.ID)
	s.NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal(first.ID, filtered[0].ID)
	s.Equal("manuals", filtered[0].CategoryName)
}

// TestDeleteDownload tests row deletion.
func (s *StoreTestSuite) TestDeleteDownload() {
	created, err := s.store.InsertDownload("User guide", "guide.pdf", "1757608919239-guide.pdf", 1024, "application/pdf", nil)
	s.Require().NoError(err)

	s.NoError(s.store.DeleteDownload(created.ID))
	s.ErrorIs(s.store.DeleteDownload(created.ID), ErrDownloadNotFound)
}
