// Package pipeline runs the layout analysis stages over documents.
//
// A [Pipeline] applies an ordered list of [Stage] values to a document and
// stops at the first error:
//
//	p := pipeline.New(pipeline.Default(pipeline.DefaultComponents())...)
//	doc, err := p.Process(ctx, doc)
//
// [Pipeline.ProcessAll] processes several independent documents
// concurrently. A single document is always processed by one goroutine.
package pipeline
