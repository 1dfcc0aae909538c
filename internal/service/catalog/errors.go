package catalog

import "errors"

var (
	// ErrClassNotFound возвращается, когда класс отсутствует в каталоге
	ErrClassNotFound = errors.New("class not found")

	// ErrClassNotBookable возвращается для классов без онлайн-оплаты (contact only, coming soon)
	ErrClassNotBookable = errors.New("class is not available for online booking")

	// ErrPriceMismatch возвращается, когда цена из запроса не совпадает с каталогом
	ErrPriceMismatch = errors.New("price does not match the catalog")
)
