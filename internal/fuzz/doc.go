// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> words -> passes -> render). Its goal is to smoke test
// robustness and guard against panics on arbitrary inputs, and to check the
// properties that must hold for every lexable input.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
