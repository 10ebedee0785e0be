// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go         — Handler с DI (хранилища, logger)
//   - routes.go          — регистрация маршрутов
//   - middleware.go      — middleware (logging, recovery)
//   - response.go        — унифицированные JSON-ответы и отображение ошибок
//   - dto.go             — Data Transfer Objects и разбор query-параметров
//   - flower_handler.go  — обработчики для /flowers (список, запись, статистика, сводка)
//   - species_handler.go — обработчики для /species
//   - openapi.go         — OpenAPI документ и страница /docs
//
// API предоставляет REST endpoints только для чтения: датасет
// неизменяем, путей записи нет.
package api
