package i18n

// ZhCNMessages 简体中文消息目录 / Simplified Chinese message catalog
var ZhCNMessages = map[string]string{
	// 主菜单
	"app.title":        "MathDesk",
	"menu.planner":     "日程规划",
	"menu.library":     "图书馆",
	"menu.mathtool":    "数学助手",
	"menu.games":       "数学游戏",
	"menu.hint":        "↑/↓ 选择 · enter 打开 · q 退出",
	"menu.desc.planner":  "规划一天并查找空闲时间",
	"menu.desc.library":  "管理图书、笔记与划线",
	"menu.desc.mathtool": "练习题与分步求解器",
	"menu.desc.games":    "限时答题游戏，记录最高分",

	// 日程规划
	"planner.title":          "日程规划",
	"planner.no_events":      "当天没有日程",
	"planner.free_slots":     "空闲时间段",
	"planner.no_free_slots":  "今天没有空闲时间了",
	"planner.confirm_delete": "删除 %q 吗？(y/n)",
	"planner.export_done":    "日历已导出到 %s",
	"planner.form.title":     "标题",
	"planner.form.date":      "日期",
	"planner.form.start":     "开始",
	"planner.form.end":       "结束",
	"planner.form.category":  "类别",
	"planner.form.recurring": "重复",
	"planner.form.reminder":  "提醒",
	"planner.form.notes":     "备注",

	"category.class":    "课程",
	"category.meeting":  "会议",
	"category.personal": "个人",

	"recur.none":    "不重复",
	"recur.daily":   "每天",
	"recur.weekly":  "每周",
	"recur.monthly": "每月",

	// 图书馆
	"library.title":          "图书馆",
	"library.search":         "搜索标题、作者或标签...",
	"library.empty":          "没有匹配的图书",
	"library.confirm_delete": "将 %q 移出图书馆吗？(y/n)",
	"library.notes":          "笔记",
	"library.highlights":     "划线",
	"library.form.title":     "标题",
	"library.form.author":    "作者",
	"library.form.isbn":      "ISBN",
	"library.form.category":  "分类",
	"library.form.tags":      "标签（逗号分隔）",
	"library.form.cover":     "封面链接",
	"library.form.note":      "添加笔记",
	"library.form.highlight": "添加划线",
	"library.added":          "添加于 %s",

	// 数学助手
	"mathtool.title":         "数学助手",
	"mathtool.tab.practice":  "练习",
	"mathtool.tab.solver":    "求解",
	"mathtool.tab.worksheet": "习题卷",
	"mathtool.prompt":        "输入算式，例如 25 + 37",
	"mathtool.solution":      "解答",
	"mathtool.steps":         "步骤",
	"mathtool.topic":         "主题",
	"mathtool.difficulty":    "难度",

	"topic.arithmetic": "算术",
	"topic.algebra":    "代数",
	"topic.geometry":   "几何",
	"topic.calculus":   "微积分",
	"topic.statistics": "统计",

	"difficulty.easy":   "简单",
	"difficulty.medium": "中等",
	"difficulty.hard":   "困难",

	// 数学游戏
	"games.title":       "数学游戏",
	"games.high_score":  "最高分：%d",
	"games.score":       "得分：%d",
	"games.time":        "用时：%d 秒",
	"games.question":    "第 %d / %d 题",
	"games.correct":     "答对了！",
	"games.wrong":       "答错了，正确答案是 %v",
	"games.results":     "本局结束",
	"games.final_score": "最终得分：%d",
	"games.accuracy":    "正确率：%.0f%%",
	"games.new_record":  "新纪录！",
	"games.play_again":  "enter 再来一局 · esc 返回",

	"game.arithmetic":     "极速算术",
	"game.fractions":      "分数挑战",
	"game.decimals":       "小数冲刺",
	"game.multiplication": "乘法表",

	// 状态与错误
	"status.saved": "已保存",
	"error.save":   "保存失败：%v",
	"error.load":   "加载失败：%v",

	// 快捷键提示
	"keys.back":   "esc 返回",
	"keys.quit":   "q 退出",
	"keys.select": "enter 选择",
	"keys.new":    "n 新建",
	"keys.edit":   "e 编辑",
	"keys.delete": "d 删除",
	"keys.export": "x 导出",
	"keys.free":   "f 空闲时间",
}
