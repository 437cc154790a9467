// Package control holds headless adapters that drive a types.Table the way
// interactive widgets would: a debounced search box, select dropdowns, a
// three-state sort toggle, a pagination window, a row-select click handler,
// and custom pipe binding. None of them render anything; they translate
// user intents into table operations and derive display state back out of
// the table state.
package control
