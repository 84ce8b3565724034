package config

// Config is the complete pdfact configuration.
type Config struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`     // debug, info, warn, error
	Format      string `mapstructure:"format" yaml:"format"`           // txt, json, xml, yaml, md, html
	Unit        string `mapstructure:"unit" yaml:"unit"`               // paragraphs, blocks, lines, words or characters
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency"` // documents processed at once

	Statistics    StatisticsCfg    `mapstructure:"statistics" yaml:"statistics"`
	Semantics     SemanticsCfg     `mapstructure:"semantics" yaml:"semantics"`
	Paragraphs    ParagraphsCfg    `mapstructure:"paragraphs" yaml:"paragraphs"`
	Dehyphenation DehyphenationCfg `mapstructure:"dehyphenation" yaml:"dehyphenation"`
}

// StatisticsCfg configures statistics aggregation.
type StatisticsCfg struct {
	FontSizePrecision int `mapstructure:"font_size_precision" yaml:"font_size_precision"` // decimal places
	LinePrecision     int `mapstructure:"line_precision" yaml:"line_precision"`           // decimal places
}

// SemanticsCfg configures role classification.
type SemanticsCfg struct {
	Strategies         []string        `mapstructure:"strategies" yaml:"strategies"` // applied in order
	TitleFontSizeRatio float64         `mapstructure:"title_font_size_ratio" yaml:"title_font_size_ratio"`
	CaptionPattern     string          `mapstructure:"caption_pattern" yaml:"caption_pattern"`
	ReferenceHeadings  []string        `mapstructure:"reference_headings" yaml:"reference_headings"`
	HeaderFooter       HeaderFooterCfg `mapstructure:"header_footer" yaml:"header_footer"`
	Heading            HeadingCfg      `mapstructure:"heading" yaml:"heading"`
}

// HeaderFooterCfg configures page header and footer detection.
type HeaderFooterCfg struct {
	MinOccurrenceRatio float64 `mapstructure:"min_occurrence_ratio" yaml:"min_occurrence_ratio"`
	MinPages           int     `mapstructure:"min_pages" yaml:"min_pages"`
}

// HeadingCfg configures heading detection.
type HeadingCfg struct {
	MinFontSizeRatio     float64 `mapstructure:"min_font_size_ratio" yaml:"min_font_size_ratio"`
	MaxLines             int     `mapstructure:"max_lines" yaml:"max_lines"`
	MaxWords             int     `mapstructure:"max_words" yaml:"max_words"`
	BoldIndicatesHeading bool    `mapstructure:"bold_indicates_heading" yaml:"bold_indicates_heading"`
}

// ParagraphsCfg configures paragraph segmentation.
type ParagraphsCfg struct {
	TransparentRoles []string `mapstructure:"transparent_roles" yaml:"transparent_roles"` // e.g. page-header, page-footer
}

// DehyphenationCfg configures dehyphenation.
type DehyphenationCfg struct {
	LowerCase bool `mapstructure:"lower_case" yaml:"lower_case"` // compare words case-insensitively
}
