package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже истекла
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrTooManySessions возвращается при превышении лимита живых сессий
	ErrTooManySessions = errors.New("session.repository: too many sessions")

	// ErrInvalidSessionID возвращается, когда идентификатор не является UUID
	ErrInvalidSessionID = errors.New("session.repository: invalid session id")

	// ErrNilRules возвращается при попытке сохранить пустые правила
	ErrNilRules = errors.New("session.repository: rules are required")
)
