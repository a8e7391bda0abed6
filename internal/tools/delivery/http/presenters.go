package http

type toolResp struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type listResp struct {
	Tools []toolResp `json:"tools"`
}

type executeResp struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}
