package study

import "errors"

var (
	// ErrSessionActive is returned by Start when a session is already open.
	ErrSessionActive = errors.New("a study session is already in progress")

	// ErrNoSession is returned by Answer, Skip, and End when no session is
	// open.
	ErrNoSession = errors.New("no study session in progress")

	// ErrQuestionNotFound is returned when a question id is unknown.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrAnswerNotFound is returned when an answer id does not belong to
	// the given question.
	ErrAnswerNotFound = errors.New("answer not found")
)
