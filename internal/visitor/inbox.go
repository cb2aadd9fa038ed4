package visitor

import (
	"sync"

	"github.com/apsaracreations/saree-shop/internal/models"
)

// Redirect — перенаправление, которое клиент должен выполнить.
type Redirect struct {
	Page    models.Page `json:"-"`
	URL     string      `json:"url"`
	Message string      `json:"message,omitempty"`
}

// Inbox копит перенаправления и сообщение для страницы входа одного посетителя.
// Реализует auth.Navigator: перенаправление может прийти и из запроса, и от
// таймера сессии, поэтому оно хранится до следующего обращения клиента.
type Inbox struct {
	mu       sync.Mutex
	basePath string
	redirect *Redirect
	message  string
}

func NewInbox(basePath string) *Inbox {
	return &Inbox{basePath: basePath}
}

// Navigate запоминает перенаправление. Непустое сообщение заменяет прежнее.
func (i *Inbox) Navigate(page models.Page, message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.redirect = &Redirect{Page: page, URL: page.URL(i.basePath), Message: message}
	if message != "" {
		i.message = message
	}
}

// TakeRedirect возвращает и сбрасывает ожидающее перенаправление.
func (i *Inbox) TakeRedirect() (Redirect, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.redirect == nil {
		return Redirect{}, false
	}
	r := *i.redirect
	i.redirect = nil
	return r, true
}

// TakeMessage возвращает и сбрасывает сообщение для страницы входа.
func (i *Inbox) TakeMessage() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	m := i.message
	i.message = ""
	return m
}
