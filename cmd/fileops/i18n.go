// Package main provides localization for the fileops CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"List, read, copy and convert files": "ファイルの一覧・読み込み・コピー・変換",

		// Global flags
		"Path to a YAML config file":           "YAML設定ファイルのパス",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Shared flags
		"Character encoding of the file (default: utf-8)": "ファイルの文字コード（デフォルト: utf-8）",

		// ls command
		"List files in a directory by prefix and suffix": "接頭語と接尾語でディレクトリ内のファイルを一覧",
		"Base name prefix to match":                      "一致させるファイル名の接頭語",
		"Base name suffix to match":                      "一致させるファイル名の接尾語",
		"ls requires exactly one directory argument":     "ls にはディレクトリ引数が1つ必要です",

		// cat command
		"Print a file's content":                "ファイルの内容を表示",
		"Write raw bytes without decoding":      "デコードせずに生のバイト列を出力",
		"cat requires exactly one file argument": "cat にはファイル引数が1つ必要です",

		// lines command
		"Print a file's content split into lines":  "ファイルの内容を行単位で表示",
		"lines requires exactly one file argument": "lines にはファイル引数が1つ必要です",

		// json command
		"Parse a JSON file and pretty-print it":    "JSONファイルを解析して整形表示",
		"json requires exactly one file argument":  "json にはファイル引数が1つ必要です",

		// cp command
		"Copy one or more files":                        "1つ以上のファイルをコピー",
		"Skip missing source files instead of failing":  "存在しないコピー元ファイルをエラーにせずスキップ",
		"cp requires at least one source and a destination": "cp には1つ以上のコピー元とコピー先が必要です",

		// mv command
		"Move a file":                              "ファイルを移動",
		"mv requires a source and a destination":   "mv には移動元と移動先が必要です",

		// write command
		"Write standard input to a file":            "標準入力をファイルに書き込み",
		"write requires exactly one file argument":  "write にはファイル引数が1つ必要です",

		// convert command
		"Convert a file's character encoding":          "ファイルの文字コードを変換",
		"Source file encoding":                         "変換元ファイルの文字コード",
		"Destination file encoding":                    "変換後ファイルの文字コード",
		"convert requires a source and a destination":  "convert には変換元と変換先が必要です",
	})
}
