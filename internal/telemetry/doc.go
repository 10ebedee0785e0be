// Package telemetry обеспечивает наблюдаемость сервиса.
//
// logging.go — structured logging через slog; единый формат для
// всего процесса, управляется переменными LOG_LEVEL и LOG_FORMAT.
// Prometheus метрики экспортируются сервером на /metrics.
package telemetry
