package config

type Config struct {
	InputPath          string
	OutputPath         string
	Family             string
	FPS                int
	Workers            int
	SceneSeconds       float64
	MinTotalSeconds    float64
	TrailerFrames      int
	PlaceholderOnError bool
	ListenAddr         string
	ShowStats          bool
	BuildVersion       string
}
