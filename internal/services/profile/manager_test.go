package profile

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/thirstylabs/chugline/internal/models"
)

type ProfileManagerTestSuite struct {
	suite.Suite
	manager *Manager
	record  *models.UserRecord
}

func (s *ProfileManagerTestSuite) SetupTest() {
	s.manager = New()
	s.record = &models.UserRecord{
		UserID:      "test-user-id",
		DisplayName: "Original Name",
	}
}

func TestProfileManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileManagerTestSuite))
}

func (s *ProfileManagerTestSuite) TestDefaultDisplayName() {
	s.Equal("Anonymous User u1abcd", s.manager.DefaultDisplayName("u1abcdef-rest-of-uid"))
}

func (s *ProfileManagerTestSuite) TestDefaultDisplayNameShortUserID() {
	// A uid shorter than the prefix length is used whole
	s.Equal("Anonymous User u1", s.manager.DefaultDisplayName("u1"))
}

func (s *ProfileManagerTestSuite) TestRenameTrims() {
	err := s.manager.Rename(s.record, "  New Name  ")

	s.Require().NoError(err)
	s.Equal("New Name", s.record.DisplayName)
}

func (s *ProfileManagerTestSuite) TestRenameRejectsEmpty() {
	err := s.manager.Rename(s.record, "")

	s.Require().Error(err)
	s.Equal(ErrEmptyDisplayName, err)
	s.Equal("Original Name", s.record.DisplayName)
}

func (s *ProfileManagerTestSuite) TestRenameRejectsWhitespaceOnly() {
	err := s.manager.Rename(s.record, "   ")

	s.Require().Error(err)
	s.Equal(ErrEmptyDisplayName, err)
	s.Equal("Original Name", s.record.DisplayName)
}
