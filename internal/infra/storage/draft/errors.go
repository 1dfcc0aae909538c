package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновика нет или истёк TTL
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrDraftExists возвращается при повторном создании черновика с тем же ID
	ErrDraftExists = errors.New("draft.repository: draft already exists")

	// ErrVersionConflict возвращается, когда версия в хранилище отличается от ожидаемой
	ErrVersionConflict = errors.New("draft.repository: version conflict")

	// ErrEncode возвращается при ошибке сериализации черновика
	ErrEncode = errors.New("draft.repository: failed to encode draft")

	// ErrDecode возвращается при ошибке десериализации черновика
	ErrDecode = errors.New("draft.repository: failed to decode draft")

	// ErrExecCommand возвращается при ошибке выполнения команды Redis
	ErrExecCommand = errors.New("draft.repository: failed to execute command")
)
