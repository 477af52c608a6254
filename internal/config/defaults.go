package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RequestTimeoutSeconds == 0 {
		cfg.Server.RequestTimeoutSeconds = 60
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "sqlite3"
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/lapwise/data/comparisons.db"
	}
	if cfg.Proxy.URL == "" {
		cfg.Proxy.URL = "https://api.allorigins.win/get"
	}
	if cfg.Proxy.TimeoutSeconds == 0 {
		cfg.Proxy.TimeoutSeconds = 10
	}
	if cfg.Proxy.CacheSize == 0 {
		cfg.Proxy.CacheSize = 128
	}
	if cfg.Proxy.CacheTTLSeconds == 0 {
		cfg.Proxy.CacheTTLSeconds = 900
	}
	if cfg.Search.TavilyURL == "" {
		cfg.Search.TavilyURL = "https://api.tavily.com/search"
	}
	if cfg.Search.DuckDuckGoURL == "" {
		cfg.Search.DuckDuckGoURL = "https://duckduckgo.com/html/"
	}
	if cfg.Search.HitLimit == 0 {
		cfg.Search.HitLimit = 3
	}
	if cfg.Search.DiscoverLimit == 0 {
		cfg.Search.DiscoverLimit = 3
	}
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []string{"openai", "gemini"}
	}
	if cfg.LLM.OpenAI.Model == "" {
		cfg.LLM.OpenAI.Model = "gpt-4o-mini"
	}
	if cfg.LLM.Gemini.Model == "" {
		cfg.LLM.Gemini.Model = "gemini-1.5-flash"
	}
	if cfg.Catalog.DebounceMs == 0 {
		cfg.Catalog.DebounceMs = 400
	}
	cfg.Ranking.ApplyDefaults()
}
