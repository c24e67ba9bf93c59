// 指示: miu200521358
package armature

import "github.com/miu200521358/mu_poser2rig/pkg/shared/base/logging"

// logArmatureInfo はスケルトン入出力の情報ログを出力する。
func logArmatureInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}
