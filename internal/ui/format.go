package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders bytes with a binary unit and at most two decimals
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	i = min(i, len(sizeUnits)-1)

	value := float64(bytes) / math.Pow(1024, float64(i))
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// FormatDate renders t relative to now for the last week and as a short
// date before that
func FormatDate(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return plural(int(diff/time.Minute), "minute") + " ago"
	case diff < 24*time.Hour:
		return plural(int(diff/time.Hour), "hour") + " ago"
	case diff < 7*24*time.Hour:
		return plural(int(diff/(24*time.Hour)), "day") + " ago"
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders an absolute date and time
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Kind groups entries for glyphs and colors
type Kind int

const (
	KindFile Kind = iota
	KindFolder
	KindPDF
	KindDocument
	KindSpreadsheet
	KindPresentation
	KindText
	KindImage
	KindVideo
	KindAudio
	KindArchive
	KindScript
	KindMarkup
	KindStyle
	KindData
	KindCode
	KindShell
	KindExecutable
)

var kindByExt = map[string]Kind{}

func init() {
	groups := map[Kind][]string{
		KindPDF:          {".pdf"},
		KindDocument:     {".doc", ".docx"},
		KindSpreadsheet:  {".xls", ".xlsx", ".csv"},
		KindPresentation: {".ppt", ".pptx"},
		KindText:         {".txt", ".md", ".markdown"},
		KindImage:        {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".ico"},
		KindVideo:        {".mp4", ".avi", ".mov", ".wmv", ".flv", ".mkv", ".webm"},
		KindAudio:        {".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
		KindArchive:      {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
		KindScript:       {".js", ".ts", ".jsx", ".tsx", ".vue"},
		KindMarkup:       {".html", ".htm", ".xml"},
		KindStyle:        {".css", ".scss", ".sass", ".less"},
		KindData:         {".json", ".yaml", ".yml", ".toml"},
		KindCode:         {".py", ".java", ".class", ".jar", ".c", ".cpp", ".h", ".hpp", ".go"},
		KindShell:        {".sh", ".bash", ".zsh"},
		KindExecutable:   {".exe", ".app", ".dmg", ".deb", ".rpm"},
	}
	for kind, exts := range groups {
		for _, ext := range exts {
			kindByExt[ext] = kind
		}
	}
}

// KindOf classifies an entry by type and extension
func KindOf(e types.FileEntry) Kind {
	if e.IsDirectory {
		return KindFolder
	}
	if kind, ok := kindByExt[strings.ToLower(e.Ext())]; ok {
		return kind
	}
	return KindFile
}

var kindGlyphs = map[Kind]string{
	KindFolder:       "▸",
	KindPDF:          "¶",
	KindDocument:     "≡",
	KindSpreadsheet:  "▦",
	KindPresentation: "▭",
	KindText:         "≣",
	KindImage:        "◧",
	KindVideo:        "▶",
	KindAudio:        "♪",
	KindArchive:      "▣",
	KindScript:       "λ",
	KindMarkup:       "‹›",
	KindStyle:        "#",
	KindData:         "{}",
	KindCode:         "λ",
	KindShell:        "$",
	KindExecutable:   "⚙",
}

// Glyph returns a short symbol for the entry
func Glyph(e types.FileEntry) string {
	if g, ok := kindGlyphs[KindOf(e)]; ok {
		return g
	}
	return "·"
}

var kindColors = map[Kind]lipgloss.Color{
	KindFolder:       ColorPrimary,
	KindPDF:          lipgloss.Color("160"),
	KindDocument:     lipgloss.Color("33"),
	KindSpreadsheet:  lipgloss.Color("34"),
	KindPresentation: lipgloss.Color("208"),
	KindImage:        lipgloss.Color("135"),
	KindVideo:        lipgloss.Color("205"),
	KindAudio:        lipgloss.Color("37"),
	KindArchive:      lipgloss.Color("214"),
	KindScript:       lipgloss.Color("62"),
	KindMarkup:       lipgloss.Color("62"),
	KindStyle:        lipgloss.Color("62"),
	KindData:         lipgloss.Color("62"),
	KindCode:         lipgloss.Color("62"),
}

// KindColor returns the color used for an entry's glyph and name
func KindColor(e types.FileEntry) lipgloss.Color {
	if c, ok := kindColors[KindOf(e)]; ok {
		return c
	}
	return ColorMuted
}
