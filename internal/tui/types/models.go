package types

// --- Counter ---
type CounterInfo struct {
	Display   int  // 補間中的顯示值
	Value     int  // 目標值
	Animating bool
	Pressed   bool // 遞增按鈕按下反饋
	Spinning  bool // 重置按鈕旋轉中
	SpinFrame int
}

// --- Palette ---
type SwatchInfo struct {
	Colors []string // 從左到右的漸變採樣
	Label  string
	Popped bool
}

// --- Contact form ---
type FieldInfo struct {
	Label   string
	View    string // textinput 渲染結果
	Focused bool
}

type FormInfo struct {
	Fields  []FieldInfo
	Active  bool
	Button  string
	Busy    bool
	Sent    bool
	Spinner string
	Receipt string // 最近一次提交的編號前綴
}

// --- Sequence ---
type ProgressInfo struct {
	Done    int
	Total   int
	Hint    string
	Matches int
}

// --- Header ---
type HeaderInfo struct {
	Version   string
	Theme     string
	Spinning  bool
	SpinFrame int
}
