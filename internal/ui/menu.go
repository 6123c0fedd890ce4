package ui

import (
	"fmt"
	"io"
)

// MenuTitle heads the main menu.
const MenuTitle = "=== GESTOR DE GASTOS ==="

// MainMenu holds the main menu entries; option n is MainMenu[n-1].
var MainMenu = []string{
	"Registrar nuevo gasto",
	"Listar todos los gastos",
	"Listar gastos por categoría",
	"Calcular totales",
	"Reportes",
	"Guardar reporte en JSON",
	"Ver historial de alertas",
	"Ver promedios y límites",
	"Salir",
}

func RenderMenu(w io.Writer) {
	fmt.Fprintln(w)
	RenderChoices(w, MenuTitle, MainMenu)
}

// RenderChoices prints a numbered list starting at 1.
func RenderChoices(w io.Writer, title string, options []string) {
	if title != "" {
		fmt.Fprintln(w, titleStyle.Render(title))
	}
	for i, opt := range options {
		fmt.Fprintf(w, "%d. %s\n", i+1, opt)
	}
}
