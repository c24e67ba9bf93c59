// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_poser2rig/pkg/shared/base/logging"

// logRigInfo はリグ生成の情報ログを出力する。
func logRigInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logRigDebug はリグ生成のデバッグログを出力する。
func logRigDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}

// logRigWarn はリグ生成の警告ログを出力する。
func logRigWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}
