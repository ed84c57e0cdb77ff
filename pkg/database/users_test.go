package database

// TestCreateUser tests user creation.
func (s *StoreTestSuite) TestCreateUser() {
	userRecord, err := s.store.CreateUser("admin", "$2a$10$fakehashfakehashfakehash")
	s.NoError(err)
	s.NotZero(userRecord.ID)
	s.Equal("admin", userRecord.Username)
}

// TestCreateUserDuplicate tests username uniqueness.
func (s *StoreTestSuite) TestCreateUserDuplicate() {
	_, err := s.store.CreateUser("admin", "hash-one")
	s.Require().NoError(err)

	_, err = s.store.CreateUser("admin", "hash-two")
	s.ErrorIs(err, ErrUsernameTaken)
}

// TestUpsertUser tests that seeding is idempotent and replaces the hash.
func (s *StoreTestSuite) TestUpsertUser() {
	first, err := s.store.UpsertUser("admin", "hash-one")
	s.Require().NoError(err)

	second, err := s.store.UpsertUser("admin", "hash-two")
	s.NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal("hash-two", second.PasswordHash)
}

// TestGetUser tests lookups by username and ID.
func (s *StoreTestSuite) TestGetUser() {
	created, err := s.store.CreateUser("admin", "hash")
	s.Require().NoError(err)

	byName, err := s.store.GetUserByUsername("admin")
	s.NoError(err)
	s.Equal(created.ID, byName.ID)
	s.Equal("hash", byName.PasswordHash)

	byID, err := s.store.GetUserByID(created.ID)
	s.NoError(err)
	s.Equal("admin", byID.Username)

	_, err = s.store.GetUserByUsername("nobody")
	s.ErrorIs(err, ErrUserNotFound)

	_, err = s.store.GetUserByID(created.ID + 1000)
	s.ErrorIs(err, ErrUserNotFound)
}
