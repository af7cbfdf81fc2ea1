package usecase

const (
	// canonicalTitle replaces a donor file's first line when the donor
	// starts with a level-1 heading, normalizing away date-specific titles.
	canonicalTitle = "# 📅 今日计划"

	// sourceFallback is the Source value reported when the embedded
	// template was used instead of a donor file.
	sourceFallback = "fallback"

	// Rollover targets the priority-tasks section, matched by these title
	// prefixes in order. When neither matches, tasks land at end of file.
	rolloverPrefixEmoji = "🎯"
	rolloverPrefixText  = "今日重点任务"
)

// fallbackTemplate is the embedded day skeleton used when no same-month
// donor file exists, and always by rollover when tomorrow's file is missing.
const fallbackTemplate = `# 📅 今日计划

**☀️ 天气：晴朗，温度 25~32°C，中国·上海**

## 🎯 今日重点任务

### 学习与成长
- [ ] 示例任务：阅读30分钟

## 🌞 生活安排

### 用餐时间
- [ ] 早餐 (8:00 - 8:30)
- [ ] 午餐 (12:00 - 12:30)
- [ ] 晚餐 (18:00 - 18:30)

## 🌙 晚间总结

### 📝 今日总结 (21:00 - 21:30)
- [ ] 回顾今日完成情况

### 📋 明日计划 (21:30 - 22:00)
- [ ] 制定明日计划

## 📊 今日目标

### 🎯 主要目标
- 保持良好作息

## 💡 学习笔记

`
