package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdesk/internal/activity"
	"taskdesk/internal/category"
	"taskdesk/internal/config"
	"taskdesk/internal/export"
	"taskdesk/internal/reminder"
	"taskdesk/internal/storage"
	"taskdesk/internal/task"
	"taskdesk/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAddTitle
	modeAddCategory
	modeAddDue
	modeEdit
	modeSearch
	modeDateFilter
	modeCategoryFilter
	modeCatAdd
	modeCatRenamePick
	modeCatRenameName
	modeCatDeletePick
	modeCatDeleteRepl
	modeStats
)

type reminderMsg time.Time

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	metaStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

type editState struct {
	taskID    string
	title     string
	category  string
	completed string
	due       string
	index     int
}

// pickState is a simple vertical chooser reused by every selection prompt.
type pickState struct {
	title   string
	options []string
	index   int
}

type Model struct {
	store   *task.Store
	cats    *category.Registry
	gateway *storage.Store
	log     *activity.Logger
	checker *reminder.Checker
	cfg     config.Config

	rows     []view.Row
	criteria view.Criteria
	cursor   int
	mode     mode
	input    textinput.Model
	status   string

	confirmDel bool
	pendingDel *task.Task

	pick pickState
	edit *editState

	// add flow carries its answers across the title/category/due prompts
	addTitle    string
	addCategory string

	renameOld  string
	deleteName string
}

func Run(store *task.Store, cats *category.Registry, gateway *storage.Store, log *activity.Logger, cfg config.Config) error {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	criteria := view.Criteria{}
	if strings.EqualFold(cfg.DefaultFilter, "today") {
		criteria.Date = view.DateToday
	}

	m := Model{
		store:    store,
		cats:     cats,
		gateway:  gateway,
		log:      log,
		checker:  reminder.NewChecker(),
		cfg:      cfg,
		criteria: criteria,
		input:    ti,
		mode:     modeList,
		status:   "Press 'a' to add, space to toggle, 'd' to delete.",
	}
	m.refresh()

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m Model) reminderInterval() time.Duration {
	return time.Duration(m.cfg.ReminderIntervalSec) * time.Second
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.reminderInterval(), func(t time.Time) tea.Msg { return reminderMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reminderMsg:
		return m.checkReminders()
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// checkReminders announces newly due tasks and always reschedules itself.
func (m Model) checkReminders() (tea.Model, tea.Cmd) {
	due := m.checker.Due(m.store.All(), time.Now().Format(task.DateLayout))
	cmds := []tea.Cmd{
		tea.Tick(m.reminderInterval(), func(t time.Time) tea.Msg { return reminderMsg(t) }),
	}
	if len(due) > 0 {
		t := due[0]
		m.status = fmt.Sprintf("Reminder: %q is due (%s)", t.Title, t.DueDate)
		if len(due) > 1 {
			m.status += fmt.Sprintf(" and %d more", len(due)-1)
		}
		cmds = append(cmds, bell)
	}
	return m, tea.Batch(cmds...)
}

var bell tea.Cmd = func() tea.Msg {
	fmt.Print("\a")
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAddTitle, modeAddDue, modeSearch, modeDateFilter, modeCatAdd, modeCatRenameName:
		return m.updateTextPrompt(key, msg)
	case modeAddCategory, modeCategoryFilter, modeCatRenamePick, modeCatDeletePick, modeCatDeleteRepl:
		return m.updatePicker(key)
	case modeEdit:
		return m.updateEditMode(key, msg)
	case modeStats:
		m.mode = modeList
		m.status = "Ready"
		return m, nil
	}
	return m.updateListMode(key)
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch key {
	case "ctrl+c", k.Quit:
		return m, tea.Quit
	case k.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(m.rows))
	case k.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.rows))
		}
	case k.Add:
		m.mode = modeAddTitle
		m.input.Placeholder = "Task title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add task: type a title and press Enter"
	case k.Toggle:
		return m.toggleSelected()
	case k.Delete:
		if len(m.rows) == 0 {
			return m, nil
		}
		t := m.rows[m.cursor].Task
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case k.Edit:
		if len(m.rows) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(m.rows[m.cursor].Task)
	case k.Search:
		m.mode = modeSearch
		m.input.Placeholder = "Search titles"
		m.input.SetValue(m.criteria.Search)
		m.input.Focus()
		m.status = "Search: case-insensitive substring, Enter to apply"
	case k.FilterDate:
		m.mode = modeDateFilter
		m.input.Placeholder = task.DateLayout
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Filter by creation date (YYYY-MM-DD), empty for none"
	case k.FilterCategory:
		m.pick = pickState{title: "Filter by category", options: m.cats.AllCategories()}
		m.mode = modeCategoryFilter
		m.status = "Pick a category filter"
	case k.Today:
		m.criteria.Date = view.DateToday
		m.refresh()
		m.log.Record("Filter:", "Today")
	case k.ShowAll:
		m.criteria.Date = ""
		m.refresh()
		m.log.Record("Filter:", "All Tasks")
	case k.Export:
		return m.exportCSV()
	case k.Stats:
		m.mode = modeStats
	case k.CategoryAdd:
		m.mode = modeCatAdd
		m.input.Placeholder = "New category"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add category: type a name and press Enter"
	case k.CategoryRename:
		if len(m.cats.TaskCategories()) == 0 {
			m.status = "There are no categories to rename"
			return m, nil
		}
		m.pick = pickState{title: "Rename which category?", options: m.cats.TaskCategories()}
		m.mode = modeCatRenamePick
	case k.CategoryDelete:
		if len(m.cats.TaskCategories()) == 0 {
			m.status = "There are no categories to delete"
			return m, nil
		}
		m.pick = pickState{title: "Delete which category?", options: m.cats.TaskCategories()}
		m.mode = modeCatDeletePick
	}
	return m, nil
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	t := m.rows[m.cursor].Task
	if t.Completed {
		reopen := false
		if _, err := m.store.Edit(t.ID, task.Changes{Completed: &reopen}); err != nil {
			m.status = fmt.Sprintf("update failed: %v", err)
			return m, nil
		}
		m.log.Record("Task Reopened:", t.Title)
	} else {
		m.store.MarkDone(t.ID)
		m.log.Record("Task Completed:", t.Title)
	}
	m.saveTasks()
	m.refresh()
	return m, bell
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
	case "y", "Y":
		if m.pendingDel != nil {
			m.store.Delete(m.pendingDel.ID)
			m.saveTasks()
			m.log.Record("Task Deleted:", m.pendingDel.Title)
			m.refresh()
			m.status = "Deleted task"
		}
		m.confirmDel = false
		m.pendingDel = nil
	}
	return m, nil
}

// updateTextPrompt handles every single-field text entry mode.
func (m Model) updateTextPrompt(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		return m.confirmTextPrompt()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) confirmTextPrompt() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	switch m.mode {
	case modeAddTitle:
		if value == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.addTitle = value
		options := m.cats.TaskCategories()
		if len(options) == 0 {
			m.addCategory = ""
			m.mode = modeAddDue
			m.input.Placeholder = "Due date (YYYY-MM-DD), empty for none"
			m.input.SetValue("")
			m.status = "Due date, or Enter to skip"
			return m, nil
		}
		m.pick = pickState{title: "Category for the new task", options: options}
		m.pick.index = indexOf(m.pick.options, defaultCategory(m.cats))
		m.mode = modeAddCategory
		m.input.Blur()
		m.status = "Pick a category"
		return m, nil
	case modeAddDue:
		return m.finishAdd(value)
	case modeSearch:
		m.criteria.Search = value
		m.mode = modeList
		m.input.Blur()
		m.refresh()
		m.log.Record("Search:", value)
		return m, nil
	case modeDateFilter:
		if value != "" {
			if _, err := time.Parse(task.DateLayout, value); err != nil {
				m.status = "Dates look like 2006-01-02"
				return m, nil
			}
		}
		m.criteria.Date = value
		m.mode = modeList
		m.input.Blur()
		m.refresh()
		m.log.Record("Filter by Date:", value)
		return m, nil
	case modeCatAdd:
		if !m.cats.Add(value) {
			m.status = fmt.Sprintf("Cannot add category %q", value)
			return m, nil
		}
		m.mode = modeList
		m.input.Blur()
		m.refresh()
		m.status = fmt.Sprintf("Added category %q", value)
		m.log.Record("Category Added:", value)
		return m, nil
	case modeCatRenameName:
		if !m.cats.Rename(m.renameOld, value, m.store) {
			m.status = fmt.Sprintf("Cannot rename %q to %q", m.renameOld, value)
			return m, nil
		}
		m.saveTasks()
		m.mode = modeList
		m.input.Blur()
		m.refresh()
		m.status = fmt.Sprintf("Renamed %q to %q", m.renameOld, value)
		m.log.Record("Category Renamed:", m.renameOld+" -> "+value)
		return m, nil
	}
	return m, nil
}

func (m Model) finishAdd(due string) (tea.Model, tea.Cmd) {
	t, err := m.store.Add(m.addTitle, m.addCategory, due)
	if err != nil {
		m.status = fmt.Sprintf("add failed: %v", err)
		return m, nil
	}
	m.saveTasks()
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.refresh()
	m.cursor = clampCursor(len(m.rows)-1, len(m.rows))
	m.status = fmt.Sprintf("Added %q", t.Title)
	m.log.Record("Task Added:", t.Title)
	return m, bell
}

func (m Model) updatePicker(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Down, "down":
		m.pick.index = clampCursor(m.pick.index+1, len(m.pick.options))
		return m, nil
	case m.cfg.Keys.Up, "up":
		m.pick.index = clampCursor(m.pick.index-1, len(m.pick.options))
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		if len(m.pick.options) == 0 {
			m.mode = modeList
			return m, nil
		}
		return m.confirmPick(m.pick.options[m.pick.index])
	}
	return m, nil
}

func (m Model) confirmPick(choice string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAddCategory:
		m.addCategory = choice
		m.mode = modeAddDue
		m.input.Placeholder = "Due date (YYYY-MM-DD), empty for none"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Due date, or Enter to skip"
	case modeCategoryFilter:
		m.criteria.Category = choice
		m.mode = modeList
		m.refresh()
		m.log.Record("Filter:", choice)
	case modeCatRenamePick:
		m.renameOld = choice
		m.mode = modeCatRenameName
		m.input.Placeholder = "New name for " + choice
		m.input.SetValue("")
		m.input.Focus()
		m.status = fmt.Sprintf("Renaming %q", choice)
	case modeCatDeletePick:
		m.deleteName = choice
		remaining := without(m.cats.TaskCategories(), choice)
		if len(remaining) == 0 {
			return m.finishCategoryDelete("")
		}
		m.pick = pickState{title: "Move its tasks to", options: remaining}
		m.mode = modeCatDeleteRepl
		m.status = fmt.Sprintf("Deleting %q: pick a replacement", choice)
	case modeCatDeleteRepl:
		return m.finishCategoryDelete(choice)
	}
	return m, nil
}

func (m Model) finishCategoryDelete(replacement string) (tea.Model, tea.Cmd) {
	if !m.cats.Delete(m.deleteName, replacement, m.store) {
		m.status = fmt.Sprintf("Cannot delete category %q", m.deleteName)
		m.mode = modeList
		return m, nil
	}
	m.saveTasks()
	m.mode = modeList
	m.refresh()
	m.status = fmt.Sprintf("Deleted category %q", m.deleteName)
	m.log.Record("Category Deleted:", m.deleteName+" -> "+replacement)
	return m, nil
}

func (m Model) startEdit(t task.Task) (tea.Model, tea.Cmd) {
	m.edit = &editState{
		taskID:    t.ID,
		title:     t.Title,
		category:  t.Category,
		completed: boolToYN(t.Completed),
		due:       t.DueDate,
	}
	m.input.SetValue(m.edit.currentValue())
	m.input.Placeholder = m.edit.currentLabel()
	m.input.Focus()
	m.mode = modeEdit
	m.status = "Edit task: tab to move, enter to save/next, esc to cancel"
	return m, nil
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		m.mode = modeList
		return m, nil
	}
	switch key {
	case m.cfg.Keys.Cancel:
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "right", "down":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.index = wrapIndex(m.edit.index+1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	case "shift+tab", "left", "up":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.index = wrapIndex(m.edit.index-1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.edit.setCurrentValue(m.input.Value())
		if m.edit.index >= len(editFields())-1 {
			return m.saveEdit()
		}
		m.edit.index++
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	e := m.edit
	cat := strings.TrimSpace(e.category)
	if !m.cats.Has(cat) {
		m.status = fmt.Sprintf("Unknown category %q", cat)
		return m, nil
	}
	completed := parseYN(e.completed)
	_, err := m.store.Edit(e.taskID, task.Changes{
		Title:     &e.title,
		Category:  &cat,
		Completed: &completed,
		DueDate:   &e.due,
	})
	if err != nil {
		m.status = fmt.Sprintf("edit failed: %v", err)
		return m, nil
	}
	m.saveTasks()
	m.edit = nil
	m.mode = modeList
	m.input.Blur()
	m.refresh()
	for i, r := range m.rows {
		if r.Task.ID == e.taskID {
			m.cursor = clampCursor(i, len(m.rows))
			break
		}
	}
	m.status = "Task saved"
	m.log.Record("Task Edited:", strings.TrimSpace(e.title))
	return m, bell
}

func (m Model) exportCSV() (tea.Model, tea.Cmd) {
	name := export.DefaultFilename(time.Now())
	if err := export.ToFile(name, m.store.All()); err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return m, nil
	}
	m.status = "Exported tasks to " + name
	m.log.Record("Tasks Exported:", name)
	return m, nil
}

// saveTasks persists the collection; write failures are reported on the
// status line but never abort the session.
func (m *Model) saveTasks() {
	if err := m.gateway.SaveTasks(m.store.All()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
}

func (m *Model) refresh() {
	m.rows = view.Apply(m.store.All(), m.criteria, time.Now())
	m.cursor = clampCursor(m.cursor, len(m.rows))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("taskdesk"))
	b.WriteString("  ")
	b.WriteString(metaStyle.Render(m.filterSummary()))
	b.WriteString("\n\n")

	switch m.mode {
	case modeStats:
		b.WriteString(m.renderStats())
	case modeAddCategory, modeCategoryFilter, modeCatRenamePick, modeCatDeletePick, modeCatDeleteRepl:
		b.WriteString(m.renderPicker())
	case modeEdit:
		b.WriteString(m.renderEditor())
	default:
		if len(m.rows) == 0 {
			b.WriteString("No tasks in this view. Press 'a' to add one.")
		} else {
			b.WriteString(m.renderTaskList())
		}
		if m.mode != modeList {
			b.WriteString("\n")
			b.WriteString(m.input.View())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.countsLine()))
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.cfg.Keys)))
	return b.String()
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, r := range m.rows {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}
		checkbox := "[ ]"
		if r.Task.Completed {
			checkbox = "[x]"
		}
		line := fmt.Sprintf("%s %s %s %s", cursor, checkbox, r.Task.Title,
			metaStyle.Render("("+r.Task.Category+")"))
		if r.Task.DueDate != "" {
			line += metaStyle.Render(" due:" + r.Task.DueDate)
		}
		switch {
		case r.Overdue:
			line += " " + overdueStyle.Render("overdue")
		case r.Task.Completed:
			line = doneStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(m.pick.title)
	b.WriteString("\n\n")
	for i, opt := range m.pick.options {
		cursor := " "
		if i == m.pick.index {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, opt))
	}
	return b.String()
}

func (m Model) renderEditor() string {
	if m.edit == nil {
		return ""
	}
	fields := editFields()
	values := []string{m.edit.title, m.edit.category, m.edit.completed, m.edit.due}
	var b strings.Builder
	b.WriteString("Edit task\n\n")
	for i, name := range fields {
		prefix := " "
		if i == m.edit.index {
			prefix = ">"
		}
		val := values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-24s : %s\n", prefix, name, val))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m Model) renderStats() string {
	overall := m.store.Stats()
	visible := task.Tally(view.Tasks(m.rows))
	var b strings.Builder
	b.WriteString(headerStyle.Render("Overall"))
	b.WriteString(fmt.Sprintf("\nTotal: %d\nCompleted: %d\nPending: %d\n\n",
		overall.Total, overall.Completed, overall.Pending))
	b.WriteString(headerStyle.Render("Current View"))
	b.WriteString(fmt.Sprintf("\nShown: %d\nCompleted: %d\nPending: %d\n\n",
		visible.Total, visible.Completed, visible.Pending))
	b.WriteString(helpStyle.Render("press any key to close"))
	return b.String()
}

func (m Model) countsLine() string {
	overall := m.store.Stats()
	return fmt.Sprintf("Showing %d of %d | Completed %d | Pending %d",
		len(m.rows), overall.Total, overall.Completed, overall.Pending)
}

func (m Model) filterSummary() string {
	parts := []string{}
	switch m.criteria.Date {
	case "":
		parts = append(parts, "all dates")
	case view.DateToday:
		parts = append(parts, "today")
	default:
		parts = append(parts, m.criteria.Date)
	}
	if m.criteria.Category != "" && m.criteria.Category != category.Reserved {
		parts = append(parts, "category:"+m.criteria.Category)
	}
	if strings.TrimSpace(m.criteria.Search) != "" {
		parts = append(parts, "search:"+m.criteria.Search)
	}
	return strings.Join(parts, " • ")
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s edit • %s search • %s/%s/%s filters • %s export • %s stats • %s/%s/%s categories • %s quit",
		k.Up, k.Down, k.Add, k.Toggle, k.Delete, k.Edit, k.Search,
		k.Today, k.ShowAll, k.FilterCategory, k.Export, k.Stats,
		k.CategoryAdd, k.CategoryRename, k.CategoryDelete, k.Quit)
}

func editFields() []string {
	return []string{"title", "category", "completed (y/n)", "due date (YYYY-MM-DD)"}
}

func (e editState) currentLabel() string {
	return editFields()[e.index]
}

func (e editState) currentValue() string {
	switch e.index {
	case 0:
		return e.title
	case 1:
		return e.category
	case 2:
		return e.completed
	case 3:
		return e.due
	default:
		return ""
	}
}

func (e *editState) setCurrentValue(v string) {
	switch e.index {
	case 0:
		e.title = v
	case 1:
		e.category = v
	case 2:
		e.completed = v
	case 3:
		e.due = v
	}
}

// defaultCategory mirrors the add form's pre-selection: Personal when it
// exists, otherwise the first category.
func defaultCategory(cats *category.Registry) string {
	names := cats.TaskCategories()
	for _, n := range names {
		if n == "Personal" {
			return n
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}

func indexOf(options []string, want string) int {
	for i, o := range options {
		if o == want {
			return i
		}
	}
	return 0
}

func without(names []string, drop string) []string {
	out := names[:0]
	for _, n := range names {
		if n != drop {
			out = append(out, n)
		}
	}
	return out
}

func parseYN(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "y" || v == "yes" || v == "true" || v == "1"
}

func boolToYN(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
