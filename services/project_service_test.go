package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/surveydisco-ai/backend/dto"
)

func TestDeleteProjectRejectsBadSecretBeforeStorage(t *testing.T) {
	// The repository is deliberately nil: a wrong secret must never reach it
	s := &ProjectService{checkSecret: func(string) bool { return false }}

	_, err := s.DeleteProject(7, "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProjectRejectsEmptyPatch(t *testing.T) {
	s := &ProjectService{}

	_, err := s.UpdateProject(7, dto.ProjectUpdateRequest{})
	require.ErrorIs(t, err, ErrNoUpdatableFields)
}
