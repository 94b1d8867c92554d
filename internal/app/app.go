// Package app is the root composition: it mounts exactly one quote page
// variant and wires the new-quote observer.
package app

import (
	"log/slog"

	"quotepage/internal/page"
	"quotepage/internal/ui"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It owns the mounted page and app-level keys.
type AppModel struct {
	Component Component
	Page      ui.View
	Quit      key.Binding

	logger *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model with the page selected by component.
// Unknown components fall back to WithController.
func NewAppModel(component Component, source page.Retriever, onNewQuote page.OnNewQuote, logger *slog.Logger) *AppModel {
	if logger == nil {
		logger = slog.Default()
	}
	var p ui.View
	switch component {
	case WithoutController:
		p = page.NewMainPageWithoutController(source, onNewQuote, logger)
	default:
		component = WithController
		p = page.NewMainPage(source, onNewQuote, logger)
	}
	logger.Info("mounting quote page", "component", component.String())
	return &AppModel{
		Component: component,
		Page:      p,
		Quit:      page.DefaultKeyMap().Quit,
		logger:    logger,
	}
}

// Unmount tears down the mounted page.
func (m *AppModel) Unmount() {
	if u, ok := m.Page.(ui.Unmounter); ok {
		u.Unmount()
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Page.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.Quit) {
		a.Unmount()
		return a, tea.Quit
	}
	v, cmd := a.Page.Update(msg)
	a.Page = v
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Page.View()
}
