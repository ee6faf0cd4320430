package mailer

import (
	"context"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
)

// QueueName 是 api 和 mail worker 共用的队列名
const QueueName = "email_queue"

// Publisher 把邮件消息投递到队列，由 mail worker 异步发送
type Publisher interface {
	Publish(ctx context.Context, msg domain.MailMessage) error
}
