package database

// TestCreateArea tests area creation.
func (s *StoreTestSuite) TestCreateArea() {
	areaRecord, err := s.store.CreateArea("footer text", "<p>All rights reserved.</p>")
	s.NoError(err)
	s.NotZero(areaRecord.ID)
	s.Equal("footer text", areaRecord.Name)
	s.Equal("<p>All rights reserved.</p>", areaRecord.Content)
}

// TestCreateAreaValidation tests that the name is required but content may
// be empty.
func (s *StoreTestSuite) TestCreateAreaValidation() {
	_, err := s.store.CreateArea("", "<p>content</p>")
	s.ErrorIs(err, ErrValidation)

	areaRecord, err := s.store.CreateArea("hero text", "")
	s.NoError(err)
	s.Equal("", areaRecord.Content)
}

// TestListAreasNewestFirst tests list ordering.
func (s *StoreTestSuite) TestListAreasNewestFirst() {
	first, err := s.store.CreateArea("footer text", "a")
	s.Require().NoError(err)
	second, err := s.store.CreateArea("hero text", "b")
	s.Require().NoError(err)

	areas, err := s.store.ListAreas()
	s.NoError(err)
	s.Require().Len(areas, 2)
	s.Equal(second.ID, areas[0].ID)
	s.Equal(first.ID, areas[1].ID)
}

// TestUpdateArea tests updating name and content.
func (s *StoreTestSuite) TestUpdateArea() {
	areaRecord, err := s.store.CreateArea("footer text", "old")
	s.Require().NoError(err)

	updated, err := s.store.UpdateArea(areaRecord.ID, "footer text", "new")
	s.NoError(err)
	s.Equal("new", updated.Content)

	_, err = s.store.UpdateArea(9999, "footer text", "new")
	s.ErrorIs(err, ErrAreaNotFound)

	_, err = s.store.UpdateArea(areaRecord.ID, "", "new")
	s.ErrorIs(err, ErrValidation)
}

// TestDeleteArea tests deletion.
func (s *StoreTestSuite) TestDeleteArea() {
	areaRecord, err := s.store.CreateArea("footer text", "content")
	s.Require().NoError(err)

	s.NoError(s.store.DeleteArea(areaRecord.ID))
	s.ErrorIs(s.store.DeleteArea(areaRecord.ID), ErrAreaNotFound)
}
