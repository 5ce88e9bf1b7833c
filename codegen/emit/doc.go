// Package emit packages code fragments into goa codegen files and writes them
// to disk.
//
// Each section renders its fragments one per line. Fragment text is passed to
// the section template as data so generated code is never interpreted as
// template syntax:
//
//	scope := code.NewScope()
//	valid := scope.Name("valid")
//	f := emit.NewFile(emit.FilePath("gen", "User schema"),
//		emit.Section("validate", code.Template([]string{"let ", " = true;"}, valid)))
//	paths, err := emit.NewRenderer().Render(ctx, ".", []*codegen.File{f})
package emit
