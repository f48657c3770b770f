package service

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrNotEnoughResponses = errors.New("not enough responses yet")
	ErrInvalidResponse    = errors.New("invalid response")
	ErrInvalidName        = errors.New("requester name is required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
