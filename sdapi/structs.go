package sdapi

type Model struct {
	Title     string `json:"title"`
	ModelName string `json:"model_name"`
	Hash      string `json:"hash,omitempty"`
	Filename  string `json:"filename,omitempty"`
}

type Sampler struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

type Options struct {
	SDModelCheckpoint string `json:"sd_model_checkpoint"`
}

// Catalog is the model list and active checkpoint as reported at startup.
type Catalog struct {
	Models  []string
	Current string
}

type Txt2ImgRequest struct {
	Prompt         string  `json:"prompt"`
	Seed           int     `json:"seed"`
	SamplerName    string  `json:"sampler_name"`
	Steps          uint    `json:"steps"`
	CfgScale       float64 `json:"cfg_scale"`
	Width          uint    `json:"width"`
	Height         uint    `json:"height"`
	RestoreFaces   bool    `json:"restore_faces"`
	NegativePrompt string  `json:"negative_prompt"`
}

type Txt2ImgResponse struct {
	Images []string `json:"images"`
	Info   string   `json:"info,omitempty"`
}
