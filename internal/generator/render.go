package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/autointerface/internal/codewriter"
	"github.com/toyz/autointerface/internal/errors"
	"github.com/toyz/autointerface/internal/models"
)

// autogeneratedHeader opens every generated file
var autogeneratedHeader = []string{
	"//--------------------------------------------------------------------------------------------------",
	"// <auto-generated>",
	"//     This code was generated by a tool.",
	"//",
	"//     Changes to this file may cause incorrect behavior and will be lost if the code is regenerated.",
	"// </auto-generated>",
	"//--------------------------------------------------------------------------------------------------",
}

// generatedCodeAttribute marks the declaration as tool output
const generatedCodeAttribute = `[GeneratedCode("AutomaticInterface", "")]`

// Render produces the interface declaration for m with the default layout
func Render(m models.InterfaceModel) (string, error) {
	return RenderWithOptions(m, codewriter.Options{})
}

// RenderWithOptions produces the interface declaration for m. The output depends only on m
// and opts.
func RenderWithOptions(m models.InterfaceModel, opts codewriter.Options) (string, error) {
	w := codewriter.NewWithOptions(opts)

	for _, line := range autogeneratedHeader {
		w.AppendLine(line)
	}
	w.AppendLine("")

	for _, using := range m.Usings {
		w.AppendLine(using)
	}
	w.AppendLine("")

	w.AppendLine(fmt.Sprintf("namespace %s", m.Namespace))
	w.AppendLine("{")
	w.Indent()

	w.AppendReflowed(m.Documentation)
	w.AppendLine(generatedCodeAttribute)
	w.AppendLine(fmt.Sprintf("public partial interface %s%s", m.Name, m.GenericSuffix))
	w.AppendLine("{")
	w.Indent()

	for _, prop := range m.Properties {
		writeProperty(w, prop)
	}
	for _, method := range m.Methods {
		writeMethod(w, method)
	}
	for _, evt := range m.Events {
		writeEvent(w, evt)
	}

	w.Dedent()
	w.AppendLine("}")
	w.Dedent()
	w.AppendLine("}")

	text, err := w.Text()
	if err != nil {
		return "", errors.WrapGenerateError(fmt.Sprintf("interface %s", m.Name), err)
	}
	return text, nil
}

func writeProperty(w *codewriter.Writer, prop models.Property) {
	w.AppendReflowed(prop.Documentation)
	w.AppendLine(fmt.Sprintf("%s %s %s", prop.Type, prop.Name, accessorBlock(prop)))
	w.AppendLine("")
}

// accessorBlock renders "{ get; set; }", "{ get; }", "{ set; }" or "{  }"
func accessorBlock(prop models.Property) string {
	if !prop.HasGetter && !prop.HasSetter {
		return "{  }"
	}
	var get, set string
	if prop.HasGetter {
		get = "get; "
	}
	if prop.HasSetter {
		set = "set; "
	}
	return "{ " + get + set + "}"
}

func writeMethod(w *codewriter.Writer, method models.Method) {
	w.AppendReflowed(method.Documentation)

	w.AppendIndented(fmt.Sprintf("%s %s", method.ReturnType, method.Name))
	if method.HasGenerics() {
		names := make([]string, len(method.GenericArgs))
		for i, arg := range method.GenericArgs {
			names[i] = arg.Name
		}
		w.AppendRaw("<" + strings.Join(names, ", ") + ">")
	}
	w.AppendRaw("(" + strings.Join(method.Parameters, ", ") + ")")
	if constraints := whereClauses(method.GenericArgs); len(constraints) > 0 {
		w.AppendRaw(" " + strings.Join(constraints, " "))
	}
	w.AppendRaw(";")
	w.AppendLineBreak()
	w.AppendLine("")
}

// whereClauses returns the non-blank constraints in argument order
func whereClauses(args []models.GenericArg) []string {
	var out []string
	for _, arg := range args {
		if strings.TrimSpace(arg.Constraint) == "" {
			continue
		}
		out = append(out, arg.Constraint)
	}
	return out
}

func writeEvent(w *codewriter.Writer, evt models.Event) {
	w.AppendReflowed(evt.Documentation)
	w.AppendLine(fmt.Sprintf("event %s %s;", evt.Type, evt.Name))
	w.AppendLine("")
}
