package email

var GlobalEmailService *Service

func InitEmailService(host string, port int, username, password, from string) error {
	service, err := NewService(host, port, username, password, from)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}
