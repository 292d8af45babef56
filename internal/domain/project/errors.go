package project

import "errors"

// Project catalog domain errors
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectNameExists = errors.New("project name already exists in this company")
	ErrProjectReferenced = errors.New("project is referenced by confirmed assignments and cannot be changed")
)
