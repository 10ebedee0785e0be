// Package query — движок запросов к датасету.
//
// Структура:
//   - errors.go  — таксономия ошибок (sentinel errors + Error с контекстом)
//   - filter.go  — Filter: конъюнкция ограничений, валидация, применение
//   - sort.go    — стабильная сортировка по атрибуту или виду
//   - stats.go   — скалярные статистики (min, max, mean, median, quantile)
//   - summary.go — сводки по датасету и по отдельному виду
//
// Все функции чистые: работают над переданным slice записей,
// не имеют побочных эффектов и детерминированы. Датасет после
// загрузки неизменяем, поэтому движок безопасен для параллельных
// вызовов без блокировок.
package query
