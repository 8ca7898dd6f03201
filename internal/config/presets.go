package config

// Presets are ready-made dashboard setups selectable with --preset.
var Presets = map[string]*Config{
	"timelapse": {
		Data: DefaultData, View: "map", Year: 0, Theme: "ocean",
		Chart: ChartConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"trends": {
		Data: DefaultData, View: "line", Year: DefaultYear, Theme: "ocean",
		Chart: ChartConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"ranking": {
		Data: DefaultData, View: "bar", Year: DefaultYear, Theme: "minimal",
		Chart: ChartConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
