package discount

import "errors"

var (
	// ErrDiscountNotFound возвращается, когда активный код скидки для площадки не найден
	ErrDiscountNotFound = errors.New("discount.repository: discount code not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("discount.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("discount.repository: failed to scan row")
)
