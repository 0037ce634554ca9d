// Package format lays out a token stream into canonical source text.
//
// Назначение: конвейер проходов над плоским потоком слов (Word) без построения AST:
// классификация токенов, нормализация переводов строк, разрешение неоднозначностей,
// раскладка по стеку контекстов, необязательный перенос длинных строк и рендер.
// Каждый проход это чистая функция []Word -> []Word.
// Не делает: разбора синтаксиса, семантических проверок, гарантии ширины строки, IO.
// Зависимости: internal/lexer, internal/token, internal/source, internal/diag.
package format
