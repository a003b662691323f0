package usecase

import "errors"

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrSkillNotFound = errors.New("skill not found")
)
