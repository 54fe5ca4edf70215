package pricing

import "errors"

// ErrUnknownRuleSelection возвращается для неизвестной стратегии выбора правила
var ErrUnknownRuleSelection = errors.New("pricing: unknown rule selection strategy")
