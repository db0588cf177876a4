package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Halukc1974/erp-sub000/contracts"
	json "github.com/bytedance/sonic"
)

const DefaultWebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Cell    contracts.RecalculatedCell
}

// WebhookDispatcher pushes recalculated cells to the webhook subscribed on their table
type WebhookDispatcher struct {
	queue        chan WebhookSendCommand
	webhooks     map[string]string
	mu           sync.RWMutex
	workersCount int
	client       *http.Client
	logger       *slog.Logger
}

func NewWebhookDispatcher(workersCount int, logger *slog.Logger) *WebhookDispatcher {
	if workersCount <= 0 {
		workersCount = DefaultWebhookWorkersCount
	}

	return &WebhookDispatcher{
		queue:        make(chan WebhookSendCommand, 20),
		webhooks:     map[string]string{},
		workersCount: workersCount,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger,
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(tableId string, webhookUrl string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, tableId)
	} else {
		manager.webhooks[tableId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(tableId string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	return manager.webhooks[tableId]
}

// Notify is the cell recalculated callback of the recalculation controller
func (manager *WebhookDispatcher) Notify(cell contracts.RecalculatedCell) {
	webhook := manager.GetWebhookUrl(cell.TableId)
	if webhook == "" {
		return
	}

	go manager.addToQueue(WebhookSendCommand{Webhook: webhook, Cell: cell})
}

func (manager *WebhookDispatcher) addToQueue(command WebhookSendCommand) {
	defer func() {
		// queue is closed on shutdown
		if recover() != nil {
			manager.logger.Warn("webhook dropped on shutdown", slog.String("webhook", command.Webhook))
		}
	}()

	manager.queue <- command
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	for command := range manager.queue {
		payload, err := json.Marshal(command.Cell)
		if err != nil {
			manager.logger.Error("webhook payload", slog.String("error", err.Error()))
			continue
		}

		response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
		if err != nil {
			manager.logger.Warn("webhook send error", slog.String("webhook", command.Webhook), slog.String("error", err.Error()))
			continue
		}
		_ = response.Body.Close()

		if response.StatusCode >= 300 {
			manager.logger.Warn("unexpected webhook response", slog.String("webhook", command.Webhook), slog.String("status", response.Status))
		}
	}
}
