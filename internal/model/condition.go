package model

import "strings"

// transitionSep marks a "A转B" condition ("A turning into B"). The display
// keeps the full text, the icon follows the condition being turned into.
const transitionSep = "转"

// ConditionDisplay returns the text shown for a condition, which is always
// the full upstream string, transition form included.
func ConditionDisplay(condition string) string {
	return condition
}

// ConditionIconKey returns the condition string used for icon selection.
// For a transition form it is the part after the separator.
func ConditionIconKey(condition string) string {
	if _, after, ok := strings.Cut(condition, transitionSep); ok {
		return after
	}
	return condition
}

// IconUndefined is the fallback icon for conditions missing from the table.
const IconUndefined = "undefined.png"

// conditionIcons maps upstream condition strings to icon resource names.
var conditionIcons = map[string]string{
	"暴雪":        "BaoXue.png",
	"暴雨":        "BaoYu.png",
	"暴雨到大暴雨":    "BaoYuDaoDaBaoYu.png",
	"大暴雨":       "DaBaoYu.png",
	"大暴雨到特大暴雨":  "DaBaoYuDaoTeDaBaoYu.png",
	"大到暴雪":      "DaDaoBaoXue.png",
	"大雪":        "DaXue.png",
	"大雨":        "DaYu.png",
	"冻雨":        "DongYu.png",
	"多云":        "DuoYun.png",
	"浮沉":        "FuChen.png",
	"雷阵雨":       "LeiZhenYu.png",
	"雷阵雨伴有冰雹":   "LeiZhenYuBanYouBingBao.png",
	"霾":         "Mai.png",
	"强沙尘暴":      "QiangShaChenBao.png",
	"晴":         "Qing.png",
	"沙尘暴":       "ShaChenBao.png",
	"特大暴雨":      "TeDaBaoYu.png",
	"雾":         "Wu.png",
	"小到中雪":      "XiaoDaoZhongXue.png",
	"小到中雨":      "XiaoDaoZhongYu.png",
	"小雪":        "XiaoXue.png",
	"小雨":        "XiaoYu.png",
	"雪":         "Xue.png",
	"扬沙":        "YangSha.png",
	"阴":         "Yin.png",
	"雨":         "Yu.png",
	"雨夹雪":       "YuJiaXue.png",
	"阵雪":        "ZhenXue.png",
	"阵雨":        "ZhenYu.png",
	"中到大雪":      "ZhongDaoDaXue.png",
	"中到大雨":      "ZhongDaoDaYu.png",
	"中雪":        "ZhongXue.png",
	"中雨":        "ZhongYu.png",
	"undefined": IconUndefined,
}

// ConditionIcon resolves a condition string to its icon resource name,
// applying the transition rule first.
func ConditionIcon(condition string) string {
	if icon, ok := conditionIcons[ConditionIconKey(condition)]; ok {
		return icon
	}
	return IconUndefined
}
