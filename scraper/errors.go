package scraper

import "errors"

var (
	ErrLaunch             = errors.New("browser launch failed")
	ErrPage               = errors.New("page context failed")
	ErrNavigation         = errors.New("navigation failed")
	ErrInteractionTimeout = errors.New("interaction timed out")
)
