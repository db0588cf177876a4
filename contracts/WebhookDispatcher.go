package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(tableId string, webhookUrl string)
	GetWebhookUrl(tableId string) string
	Notify(cell RecalculatedCell)
	Start()
	Close()
}
