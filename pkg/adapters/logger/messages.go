package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Library operation traces (debug)
		"Listing files matching %s":    "%s に一致するファイルを一覧中",
		"Reading %s as %s":             "%s を %s として読み込み中",
		"Writing %d bytes to %s":       "%d バイトを %s に書き込み中",
		"Copying %s to %s":             "%s を %s にコピー中",
		"Copying %d files to %s":       "%d 個のファイルを %s にコピー中",
		"Moving %s to %s":              "%s を %s に移動中",
		"Converting %s (%s) to %s (%s)": "%s (%s) を %s (%s) に変換中",

		// CLI progress (info)
		"Copied %s":                   "%s をコピーしました",
		"Copied %d files to %s":       "%d 個のファイルを %s にコピーしました",
		"Moved %s to %s":              "%s を %s に移動しました",
		"Wrote %s":                    "%s に書き込みました",
		"Converted %s to %s":          "%s を %s に変換しました",

		// Warnings
		"Skipping %d missing files":   "存在しない %d 個のファイルをスキップします",

		// Errors
		"Failed to read %s: %s":       "%s の読み込みに失敗しました: %s",
		"Failed to copy files: %s":    "ファイルのコピーに失敗しました: %s",
		"Failed to write output: %s":  "出力の書き込みに失敗しました: %s",
	})
}
