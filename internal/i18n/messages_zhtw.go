package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse(ZhTW)

	message.SetString(lang, TraceBaseHeader, "-------------基礎信息-------------")
	message.SetString(lang, TraceSelfBase, "【%s-自己】基礎血量: %s 點 | 基礎藍量: %s 點")
	message.SetString(lang, TraceAllyBase, "【%s-隊友】基礎血量: %s 點 | 基礎藍量: %s 點")
	message.SetString(lang, TraceBasicFlat, "【基礎回血量】紅露滴聖盃瓶: %s%%")
	message.SetString(lang, TraceBasicSlow, "【基礎回血量】包含「緩慢恢復」：基礎60%%不再生效，改為 立即10%% + 持續(1%%×81)")
	message.SetString(lang, TraceApplyHeader, "------------應用不同效果------------")
	message.SetString(lang, TraceFocusBuff, "【應用】%s: 專注值恢復 %s%%")
	message.SetString(lang, TraceSpread, "【應用】%s:【基礎回血量】%s%% 變為 %s%%，可以恢復隊友血量%s%%")
	message.SetString(lang, TraceSpreadSlow, "【應用】%s")
	message.SetString(lang, TraceBoost, "【應用】%s:【基礎回血量】%s%% × 1.2 = %s%%")
	message.SetString(lang, TraceBoostMarked, "【標記】%s: 僅對「立即10%%」生效")
	message.SetString(lang, TraceSlowImmediate, "【應用】緩慢恢復: 立即10%% × 1.2^%s = %s%%")
	message.SetString(lang, TraceSlowSustained, "【應用】緩慢恢復: 持續回血 1%%×81 = %s%%")
	message.SetString(lang, TraceSlowTotal, "【合計】自身恢復 = 立即部分 + 持續部分 = %s%%")
	message.SetString(lang, TraceSlowAlly, "【應用】緩慢恢復(隊友): 5%%+(1%%×41) = %s%%")
	message.SetString(lang, TraceCapped, " (已達上限100%%)")
	message.SetString(lang, TraceTotalHeader, "--------自己喝一口聖盃瓶的總效果--------")
	message.SetString(lang, TraceSelfHealth, "【%s-自己】回血量: %s × %s%% = %s 點")
	message.SetString(lang, TraceSelfFocus, "【%s-自己】回藍量: %s × %s%% = %s 點")
	message.SetString(lang, TraceAllyHealth, "【%s-隊友】回血量: %s × %s%% = %s 點")
	message.SetString(lang, TraceAllyFocus, "【%s-隊友】回藍量: %s × %s%% = %s 點")
	message.SetString(lang, TraceUnknownCharacter, "未知角色")

	message.SetString(lang, UITitle, "黑夜君臨 參考筆記")
	message.SetString(lang, UITabMechanics, "遊戲機制")
	message.SetString(lang, UITabCharacters, "角色數據")
	message.SetString(lang, UITabEntries, "詞條詳細數據")
	message.SetString(lang, UITabBosses, "夜王Boss數據")
	message.SetString(lang, UITabWeapons, "傳說武器詳情")
	message.SetString(lang, UILoading, "正在加載數據，請稍候...")
	message.SetString(lang, UILoadFailed, "數據加載失敗，請重新啟動重試: %s")
	message.SetString(lang, UIHelp, "tab/1-5 切換頁面 · t 切換主題 · q 離開")
	message.SetString(lang, UICalcHelp, "↑/↓ 移動 · ←/→ 切換角色 · 空白鍵 選擇效果 · enter 計算")
	message.SetString(lang, UICalcSelf, "選擇我的角色")
	message.SetString(lang, UICalcAlly, "選擇隊友的角色")
	message.SetString(lang, UICalcButton, "計算回血量")
	message.SetString(lang, UICalcEmpty, "選擇效果後按 enter 計算")
	message.SetString(lang, UICalcResult, "計算結果")
	message.SetString(lang, UICalcSteps, "計算步驟")
	message.SetString(lang, UIColTarget, "對象")
	message.SetString(lang, UIColHealth, "血量")
	message.SetString(lang, UIColFocus, "藍量")
	message.SetString(lang, UIColName, "名稱")
	message.SetString(lang, UIColType, "類型")
	message.SetString(lang, UIColEffect, "效果")
	message.SetString(lang, UIColQty, "單格數量")
	message.SetString(lang, UIColExplanation, "說明")
	message.SetString(lang, UIColStacking, "疊加性")
	message.SetString(lang, UIColPoise, "削韌")
	message.SetString(lang, UIColMultiplier, "血量倍率")
	message.SetString(lang, UIColFrames, "無敵幀")
	message.SetString(lang, UIItemEffects, "道具效果")
	message.SetString(lang, UIInvincible, "翻滾無敵幀")
	message.SetString(lang, UIEntriesHelp, "/ 搜索 · esc 結束搜索 · [ ] 切換詞條表 · f 類型 · s 疊加性 · c 角色")
	message.SetString(lang, UIEntriesSearch, "輸入關鍵詞搜索...")
	message.SetString(lang, UIEntriesCount, "共 %s 條")
	message.SetString(lang, UIEntriesAllTypes, "全部類型")
	message.SetString(lang, UIAbsorptionChart, "傷害吸收率")
	message.SetString(lang, UIThemeLight, "淺色")
	message.SetString(lang, UIThemeDark, "深色")
	message.SetString(lang, UISelf, "自己")
	message.SetString(lang, UIAlly, "隊友")
	message.SetString(lang, EntryKindKey("outsider"), "局外詞條")
	message.SetString(lang, EntryKindKey("in_game"), "局內詞條")
	message.SetString(lang, EntryKindKey("talisman"), "護符詞條")
	message.SetString(lang, EntryKindKey("deep_night"), "深夜模式局外詞條")
	message.SetString(lang, UIColNightHealth, "黑夜血量")
	message.SetString(lang, UIColBasePoise, "基礎韌性")
	message.SetString(lang, UIBossesHelp, "↑/↓ 選擇夜王")
	message.SetString(lang, DamageTypeKey("normal"), "一般")
	message.SetString(lang, DamageTypeKey("slash"), "斬擊")
	message.SetString(lang, DamageTypeKey("strike"), "打擊")
	message.SetString(lang, DamageTypeKey("pierce"), "突刺")
	message.SetString(lang, DamageTypeKey("magic"), "魔力")
	message.SetString(lang, DamageTypeKey("fire"), "火")
	message.SetString(lang, DamageTypeKey("lightning"), "雷")
	message.SetString(lang, DamageTypeKey("holy"), "聖")
	message.SetString(lang, UIResistances, "異常狀態抗性")
	message.SetString(lang, UIColBaseHealth, "基礎血量")
	message.SetString(lang, UILevelStats, "血量、專注、耐力具體數值")
	message.SetString(lang, UICharactersHelp, "[ ] 切換數值")
	message.SetString(lang, UIStatHP, "血量值成長")
	message.SetString(lang, UIStatFP, "專注值成長")
	message.SetString(lang, UIStatST, "耐力值成長")
	message.SetString(lang, UIEntriesAnyStack, "全部疊加性")
	message.SetString(lang, UIEntriesAnyChar, "全部角色")
	message.SetString(lang, UIItemsHelp, "/ 搜索道具 · f 篩選類型")
	message.SetString(lang, UIItemsSearch, "搜索道具...")
	message.SetString(lang, StatusKey("poison"), "中毒")
	message.SetString(lang, StatusKey("scarlet_rot"), "腐敗")
	message.SetString(lang, StatusKey("bleed"), "出血")
	message.SetString(lang, StatusKey("frost"), "凍傷")
	message.SetString(lang, StatusKey("sleep"), "睡眠")
	message.SetString(lang, StatusKey("madness"), "發狂")
}
