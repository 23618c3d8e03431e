package config

// Version 显示在"关于"视图中，链接时可通过
// -ldflags "-X github.com/decker502/spider/pkg/config.Version=..." 覆盖
var Version = "1.4.0"

// MarketplaceURL 试用升级提示跳转的地址
const MarketplaceURL = "https://github.com/decker502/spider/releases"

// StorageAppName 用户数据目录名，保存选项、统计和存档
const StorageAppName = "spider_solitaire"

// 界面文字
const (
	AppName = "Spider Solitaire"

	NewGame    = "new game"
	Resume     = "resume"
	Options    = "options"
	Statistics = "statistics"
	About      = "about"

	DisabledInTrial     = "This feature is not available in the trial version. Tap here to get the full game."
	MenuTrialBanner     = "trial"
	MenuTrialBannerNav  = "You are playing the trial version. Tap here to get the full game with two and four suit games and statistics."
	MarketplaceOpened   = "The store address was copied to the clipboard."
	VersionCopied       = "Version copied to the clipboard."
	AboutTitle          = "about"
	AboutVersionLabel   = "Version:"
	AboutCopyrightLabel = "Copyright:"
	AboutCopyrightInfo  = "(c) decker502"
	AboutFontLabel      = "Font:"
	AboutFontInfo       = "Go fonts (c) The Go Authors"
	AboutTrialModeLabel = "trial mode"
	AboutUpgradeLabel   = "Enjoying the game? Tap here to unlock two and four suit games and the statistics page."

	OptionsThemeLabel     = "Theme:"
	OptionsDeckColorLabel = "Deck color:"

	StatsTotalGames     = "Games played"
	StatsGamesWon       = "Games won"
	StatsWinRate        = "Win rate"
	StatsTotalTimeLabel = "Total time played"
	StatsResetButton    = "reset"

	LoadingText = "loading"
)
