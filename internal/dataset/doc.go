// Package dataset загружает эталонный датасет ирисов.
//
// Файл iris.csv (150 записей, 3 вида по 50) вшивается в бинарник
// через go:embed и парсится один раз при старте процесса. После
// загрузки набор записей неизменяем.
//
// Store — реализация хранилища в памяти; используется как замена
// PostgreSQL в разработке и в тестах.
package dataset
