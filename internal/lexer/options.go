package lexer

import "stringslint/internal/diag"

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем сканировать)
	// StrictComments reports '/' followed by neither '/' nor '*' instead of
	// absorbing it silently.
	StrictComments bool
}

func (sc *Scanner) reporter() diag.Reporter {
	if sc.opts.Reporter == nil {
		return diag.NopReporter{}
	}
	return sc.opts.Reporter
}
