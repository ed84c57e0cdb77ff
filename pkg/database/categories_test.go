package database

// TestCreateCategory tests category creation under an existing system.
func (s *StoreTestSuite) TestCreateCategory() {
	systemRecord, err := s.store.CreateSystem("DHIS2", "https://dhis2.example.org")
	s.Require().NoError(err)

	categoryRecord, err := s.store.CreateCategory("manuals", systemRecord.ID)
	s.NoError(err)
	s.NotZero(categoryRecord.ID)
	s.Equal("manuals", categoryRecord.Name)
	s.Equal(systemRecord.ID, categoryRecord.SystemID)
	s.Equal("DHIS2", categoryRecord.SystemName)
}

// TestCreateCategoryUnknownSystem tests that a missing parent is reported as
// a pre-checked not-found, and nothing is persisted.
func (s *StoreTestSuite) TestCreateCategoryUnknownSystem() {
	_, err := s.store.CreateCategory("manuals", 9999)
	s.ErrorIs(err, ErrSystemNotFound)

	categories, err := s.store.ListCategories()
	s.NoError(err)
	s.Empty(categories)
}

// TestCreateCategoryValidation tests required fields.
func (s *StoreTestSuite) TestCreateCategoryValidation() {
	systemRecord, err := s.store.CreateSystem("DHIS2", "https://dhis2.example.org")
	s.Require().NoError(err)

	_, err = s.store.CreateCategory("", systemRecord.ID)
	s.ErrorIs(err, ErrValidation)

	_, err = s.store.CreateCategory("manuals", 0)
	s.ErrorIs(err, ErrValidation)
}

// TestListCategoriesNewestFirst tests list ordering and the system join.
func (s *StoreTestSuite) TestListCategoriesNewestFirst() {
	systemRecord, err := s.store.CreateSystem("DHIS2", "https://dhis2.example.org")
	s.Require().NoError(err)

	first, err := s.store.CreateCategory("first", systemRecord.ID)
	s.Require().NoError(err)
	second, err := s.store.CreateCategory("second", systemRecord.ID)
	s.Require().NoError(err)

	categories, err := s.store.ListCategories()
	s.NoError(err)
	s.Require().Len(categories, 2)
	s.Equal(second.ID, categories[0].ID)
	s.Equal(first.ID, categories[1].ID)
	s.Equal("DHIS2", categories[0].SystemName)
}

// TestUpdateCategory tests updating name and parent.
func (s *StoreTestSuite) TestUpdateCategory() {
	systemRecord, err := s.store.CreateSystem("DHIS2", "https://dhis2.example.org")
	s.Require().NoError(err)
	otherSystem, err := s.store.CreateSystem("OpenMRS", "https://openmrs.example.org")
	s.Require().NoError(err)
	categoryRecord, err := s.store.CreateCategory("manuals", systemRecord.ID)
	s.Require().NoError(err)

	updated, err := s.store.UpdateCategory(categoryRecord.ID, "guides", otherSystem.ID)
	s.NoError(err)
	s.Equal("guides", updated.Name)
	s.Equal(otherSystem.ID, updated.SystemID)
	s.Equal("OpenMRS", updated.SystemName)

	_, err = s.store.UpdateCategory(categoryRecord.ID, "guides", 9999)
	s.ErrorIs(err, ErrSystemNotFound)

	_, err = s.store.UpdateCategory(9999, "guides", systemRecord.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

// TestDeleteCategoryCascades tests that dependent downloads are removed and
// their storage keys reported.
func (s *StoreTestSuite) TestDeleteCategoryCascades() {
	systemRecord, err := s.store.CreateSystem("DHIS2", "https://dhis2.example.org")
	s.Require().NoError(err)
	categoryRecord, err := s.store.CreateCategory("manuals", systemRecord.ID)
	s.Require().NoError(err)

	_, err = s.store.InsertDownload("User guide", "guide.pdf", "1757608919239-guide.pdf", 1024, "application/pdf", &categoryRecord.ID)
	s.Require().NoError(err)

	keys, err := s.store.DeleteCategory(categoryRecord.ID)
	s.NoError(err)
	s.Equal([]string{"1757608919239-guide.pdf"}, keys)

	downloadRecords, err := s.store.ListDownloads(nil)
	s.NoError(err)
	s.Empty(downloadRecords)

	// The parent system is untouched
	_, err = s.store.GetSystem(systemRecord.ID)
	s.NoError(err)

	_, err = s.store.DeleteCategory(categoryRecord.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}
