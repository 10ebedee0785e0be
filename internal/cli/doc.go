// Package cli реализует команды консольного клиента Iris API.
//
// Структура:
//   - client.go  — HTTP-клиент и типы ответов API
//   - output.go  — табличный и JSON вывод
//   - flower.go  — команды flower list / flower show
//   - stats.go   — команды stats и summary
//   - species.go — команды species list / species summary
package cli
