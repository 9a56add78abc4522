package main

import (
	"context"
	"io"

	"github.com/draftdiff/draftdiff"
	"github.com/draftdiff/draftdiff/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Versions   draftdiff.VersionService
	Fetcher    draftdiff.Fetcher
	Extractor  draftdiff.ContentExtractor
	Converter  draftdiff.Converter
	Summarizer draftdiff.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Add     AddCmd     `cmd:"" help:"Store a draft version from a local file"`
	Fetch   FetchCmd   `cmd:"" help:"Store a version fetched from a live URL"`
	List    ListCmd    `cmd:"" help:"List stored versions"`
	Show    ShowCmd    `cmd:"" help:"Show the extracted content of a version"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored version"`
	Compare CompareCmd `cmd:"" help:"Compare two stored versions"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name string `arg:"" help:"Version name"`
	Path string `arg:"" help:"Path to a .docx or .html file"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Name string  `arg:"" help:"Version name"`
	URL  string  `arg:"" help:"Page URL"`
	Rate float64 `default:"1" help:"Requests per second"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name     string `arg:"" help:"Version name"`
	Markdown bool   `help:"Print the stored markdown rendition instead"`
	Extract  bool   `help:"Print the extracted view (the default)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Version name"`
	Force bool   `help:"Confirm deletion"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Old       string  `arg:"" help:"Name of the older version"`
	New       string  `arg:"" help:"Name of the newer version"`
	Threshold float64 `default:"0.7" help:"Heading similarity threshold (0..1)"`
	AI        bool    `help:"Append an AI summary of the differences"`
	AITimeout int     `name:"ai-timeout" default:"60" help:"AI summary timeout in seconds"`
}
