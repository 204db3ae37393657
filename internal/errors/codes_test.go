package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{ValidationGeneral, "Validation failed"},
		{GeneratorInvalidRowCount, "Row count must be a positive integer"},
		{GeneratorUnknownScenario, "Unknown generation scenario"},
		{SystemIOError, "Output file could not be written"},
		{SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_001")))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(GeneratorInvalidScenario))
	s.True(IsValidErrorCode(TransactionNotFound))
	s.True(IsValidErrorCode(PendingNotFound))
	s.False(IsValidErrorCode(ErrorCode("")))
}

func (s *CodesTestSuite) TestAllCodesHaveMessages() {
	for code, message := range errorMessages {
		s.NotEmpty(message, "code %s has an empty message", code)
	}
}
