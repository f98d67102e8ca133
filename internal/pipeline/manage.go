package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/ui"
)

var manageStyle = lipgloss.NewStyle().Margin(1, 2)

const managePageSize = 25

type manageMode int

const (
	modeList manageMode = iota
	modeConfirmDelete
	modeForm
)

// selection tracks the single trigger or delete slot the view owns. Only one
// of each is tracked at a time; starting another action overwrites the slot.
type selection struct {
	id     string
	name   string
	status Status
	err    error
}

// pipelineItem adapts a pipeline for the bubbles list
type pipelineItem struct {
	pipeline models.IngestionPipeline
	trigger  selection
}

func (i pipelineItem) FilterValue() string {
	return i.pipeline.Name + " " + i.pipeline.DisplayName
}

func (i pipelineItem) Title() string {
	title := i.pipeline.Title()
	if i.trigger.id != i.pipeline.ID {
		return title
	}
	switch i.trigger.status {
	case Waiting:
		return title + " " + ui.Faint.Render("(triggering...)")
	case Succeeded:
		return title + " " + lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render("(triggered)")
	case Failed:
		return title + " " + lipgloss.NewStyle().Foreground(ui.ColorError).Render("(trigger failed)")
	}
	return title
}

func (i pipelineItem) Description() string {
	return fmt.Sprintf("%s · %s · %s",
		i.pipeline.PipelineType.DisplayName(),
		DescribeSchedule(i.pipeline.AirflowConfig.ScheduleInterval),
		RenderRunHistory(i.pipeline),
	)
}

type pageLoadedMsg struct {
	reqID  int
	result *catalog.ListResult
	err    error
}

type triggerResultMsg struct {
	id  string
	err error
}

type deleteResultMsg struct {
	id  string
	err error
}

type saveResultMsg struct {
	err error
}

type clearTriggerMsg struct{ id string }
type clearDeleteMsg struct{ id string }

// ManageModel is the interactive management view for a service's ingestion
// pipelines: it lists them with search and paging, and supports trigger,
// delete, add and edit in place.
type ManageModel struct {
	client  *catalog.Client
	service string

	list      list.Model
	pipelines []models.IngestionPipeline
	paging    models.Paging

	// reqID tags each page fetch so a response for a superseded request is
	// dropped instead of replacing a newer page
	reqID   int
	loading bool

	mode     manageMode
	trigger  selection
	deletion selection

	form        *huh.Form
	formValues  *FormValues
	formEditing bool
	editTarget  *models.IngestionPipeline

	notice string
}

func NewManageModel(client *catalog.Client, service string) ManageModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Ingestion pipelines · %s", service)
	l.Filter = SubstringFilter
	l.AdditionalShortHelpKeys = manageHelpKeys

	m := ManageModel{
		client:  client,
		service: service,
		list:    l,
	}
	// the first page fetch is prepared here so Init can return it without
	// mutating the model
	m.reqID = 1
	m.loading = true
	return m
}

// Init implements tea.Model
func (m ManageModel) Init() tea.Cmd {
	return tea.Batch(m.list.StartSpinner(), fetchPage(m.client, m.service, m.reqID, "", ""))
}

func fetchPage(client *catalog.Client, service string, reqID int, before, after string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.List(context.Background(), catalog.ListOptions{
			Service: service,
			Limit:   managePageSize,
			Before:  before,
			After:   after,
		})
		return pageLoadedMsg{reqID: reqID, result: result, err: err}
	}
}

// reload starts a fresh page fetch, superseding any fetch still in flight
func (m *ManageModel) reload(before, after string) tea.Cmd {
	m.reqID++
	m.loading = true
	return tea.Batch(m.list.StartSpinner(), fetchPage(m.client, m.service, m.reqID, before, after))
}

func (m *ManageModel) items() []list.Item {
	items := make([]list.Item, len(m.pipelines))
	for i, p := range m.pipelines {
		items[i] = pipelineItem{pipeline: p, trigger: m.trigger}
	}
	return items
}

// Update implements tea.Model.
func (m ManageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := manageStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case pageLoadedMsg:
		if msg.reqID != m.reqID {
			// a newer fetch is in flight; this page is stale
			return m, nil
		}
		m.loading = false
		m.list.StopSpinner()
		if msg.err != nil {
			m.notice = fmt.Sprintf("Failed loading pipelines: %s", msg.err)
			return m, nil
		}
		m.pipelines = msg.result.Data
		m.paging = msg.result.Paging
		return m, m.list.SetItems(m.items())

	case triggerResultMsg:
		// resolutions only ever touch their own slot
		if msg.id != m.trigger.id {
			return m, nil
		}
		if msg.err != nil {
			m.trigger.status = Failed
			m.trigger.err = msg.err
			m.notice = fmt.Sprintf("Failed to trigger %s: %s", m.trigger.name, msg.err)
			return m, m.list.SetItems(m.items())
		}
		m.trigger.status = Succeeded
		id := msg.id
		return m, tea.Batch(
			m.list.SetItems(m.items()),
			tea.Tick(TriggerFlashDuration, func(time.Time) tea.Msg { return clearTriggerMsg{id: id} }),
		)

	case clearTriggerMsg:
		if msg.id != m.trigger.id {
			return m, nil
		}
		m.trigger = selection{}
		return m, m.list.SetItems(m.items())

	case deleteResultMsg:
		if msg.id != m.deletion.id {
			return m, nil
		}
		if msg.err != nil {
			m.notice = fmt.Sprintf("Failed to delete %s: %s", m.deletion.name, msg.err)
			m.deletion = selection{}
			m.mode = modeList
			return m, nil
		}
		m.deletion.status = Succeeded
		id := msg.id
		return m, tea.Tick(DeleteFlashDuration, func(time.Time) tea.Msg { return clearDeleteMsg{id: id} })

	case clearDeleteMsg:
		if msg.id != m.deletion.id {
			return m, nil
		}
		m.deletion = selection{}
		m.mode = modeList
		return m, m.reload("", "")

	case saveResultMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Failed to save pipeline: %s", msg.err)
		}
		m.mode = modeList
		m.form = nil
		m.editTarget = nil
		return m, m.reload("", "")
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m ManageModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			return m.startTrigger()
		case "d":
			if item, ok := m.list.SelectedItem().(pipelineItem); ok {
				m.deletion = selection{id: item.pipeline.ID, name: item.pipeline.Title()}
				m.mode = modeConfirmDelete
			}
			return m, nil
		case "a":
			return m.openAddForm()
		case "e":
			return m.openEditForm()
		case "right", "n":
			if !m.loading && m.paging.After != "" {
				return m, m.reload("", m.paging.After)
			}
			return m, nil
		case "left", "p":
			if !m.loading && m.paging.Before != "" {
				return m, m.reload(m.paging.Before, "")
			}
			return m, nil
		case "R":
			if !m.loading {
				return m, m.reload("", "")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ManageModel) startTrigger() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(pipelineItem)
	if !ok {
		return m, nil
	}

	// the slot is set synchronously for immediate feedback; a second trigger
	// while one is pending overwrites it
	m.trigger = selection{id: item.pipeline.ID, name: item.pipeline.Title(), status: Waiting}
	m.notice = ""

	client := m.client
	id := item.pipeline.ID
	return m, tea.Batch(
		m.list.SetItems(m.items()),
		func() tea.Msg {
			err := client.Trigger(context.Background(), id)
			return triggerResultMsg{id: id, err: err}
		},
	)
}

func (m ManageModel) openAddForm() (tea.Model, tea.Cmd) {
	available := AvailableTypes(m.pipelines, CapabilitiesOf(m.pipelines))
	if len(available) == 0 {
		m.notice = "All supported ingestion types are already configured for this service"
		return m, nil
	}

	m.formValues = &FormValues{}
	m.form = NewForm(m.formValues, available, false)
	m.formEditing = false
	m.mode = modeForm
	m.notice = ""
	return m, m.form.Init()
}

func (m ManageModel) openEditForm() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(pipelineItem)
	if !ok {
		return m, nil
	}

	p := item.pipeline
	m.editTarget = &p
	m.formValues = &FormValues{
		DisplayName: p.Title(),
		Type:        p.PipelineType,
		Schedule:    p.AirflowConfig.ScheduleInterval,
		Description: p.Description,
	}
	m.form = NewForm(m.formValues, nil, true)
	m.formEditing = true
	m.mode = modeForm
	m.notice = ""
	return m, m.form.Init()
}

func (m ManageModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		m.mode = modeList
		m.form = nil
		m.editTarget = nil
		return m, nil
	case huh.StateCompleted:
		return m, m.savePipeline()
	}

	return m, cmd
}

func (m *ManageModel) savePipeline() tea.Cmd {
	payload := catalog.CreatePipeline{
		Name:         PipelineName(m.service, m.formValues.Type),
		DisplayName:  m.formValues.DisplayName,
		Description:  m.formValues.Description,
		PipelineType: m.formValues.Type,
		Service:      m.service,
		AirflowConfig: models.AirflowConfig{
			ScheduleInterval: m.formValues.Schedule,
		},
	}

	client := m.client
	editing := m.formEditing
	if editing && m.editTarget != nil {
		payload.Name = m.editTarget.Name
	}

	return func() tea.Msg {
		var err error
		if editing {
			_, err = client.Update(context.Background(), payload)
		} else {
			_, err = client.Create(context.Background(), payload)
		}
		return saveResultMsg{err: err}
	}
}

func (m ManageModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// ignore keys while the delete request is in flight
	if m.deletion.status != Idle {
		return m, nil
	}

	switch key.String() {
	case "y":
		m.deletion.status = Waiting
		client := m.client
		id := m.deletion.id
		return m, func() tea.Msg {
			err := client.Delete(context.Background(), id)
			return deleteResultMsg{id: id, err: err}
		}
	case "n", "esc", "q":
		m.deletion = selection{}
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m ManageModel) View() string {
	if m.mode == modeForm {
		return manageStyle.Render(m.form.View())
	}

	var sections []string

	if m.notice != "" {
		sections = append(sections, ui.Banner(m.notice))
	}

	if m.list.FilterState() == list.FilterApplied && len(m.list.VisibleItems()) == 0 {
		sections = append(sections,
			m.list.Title,
			ui.Faint.Render(fmt.Sprintf("No pipelines match %q", m.list.FilterInput.Value())),
		)
		return manageStyle.Render(strings.Join(sections, "\n\n"))
	}

	sections = append(sections, m.list.View())

	if m.mode == modeConfirmDelete {
		sections = append(sections, m.confirmView())
	}

	return manageStyle.Render(strings.Join(sections, "\n"))
}

func (m ManageModel) confirmView() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorError).
		Padding(0, 1)

	switch m.deletion.status {
	case Waiting:
		return box.Render(fmt.Sprintf("Deleting %s...", m.deletion.name))
	case Succeeded:
		return box.Render(fmt.Sprintf("✓ Deleted %s", m.deletion.name))
	default:
		return box.Render(fmt.Sprintf("Delete pipeline %s? [y/n]", m.deletion.name))
	}
}

func manageHelpKeys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trigger")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "page")),
	}
}
