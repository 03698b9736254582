package util

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailRegistered         = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrPermissionDenied        = errors.New("permission denied")
	ErrCompanyNotFound         = errors.New("company not found")
	ErrQuestionNotFound        = errors.New("question not found")
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrCandidateNotFound       = errors.New("candidate not found or user is not a candidate")
	ErrAlreadyInvited          = errors.New("candidate is already invited to this assessment")
	ErrQuestionAlreadyLinked   = errors.New("question is already part of this assessment")
	ErrCandidateRunNotFound    = errors.New("candidate assessment not found")
	ErrQuestionNotInAssessment = errors.New("question not found or not part of the candidate assessment")
	ErrInvalidTransition       = errors.New("candidate assessment is not in a valid status for this transition")
	ErrAlreadyCompleted        = errors.New("assessment already completed")
)
