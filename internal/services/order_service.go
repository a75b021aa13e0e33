package services

import (
	"fmt"
	"log"
	"time"

	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"
	"laptopstore/pkg/rabbitmq"

	"github.com/google/uuid"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   rabbitmq.Publisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher rabbitmq.Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder validates the requested items against live products, captures
// their prices, persists the order with its detail lines, and publishes an
// order.created event. Publish failures are logged, not surfaced: the order
// stands regardless.
func (s *OrderService) CreateOrder(input *models.OrderInput) (*models.Order, error) {
	var total float64
	details := make([]models.OrderDetail, 0, len(input.Items))

	for _, item := range input.Items {
		product, err := s.productRepo.GetActiveByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.StockQuantity < item.Quantity {
			return nil, apperrors.NewValidation(fmt.Sprintf(
				"insufficient stock for product %s (requested: %d, available: %d)",
				product.Name, item.Quantity, product.StockQuantity))
		}

		details = append(details, models.OrderDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		total += product.Price * float64(item.Quantity)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		Date:            date,
		Name:            input.Name,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		ShippingAddress: input.ShippingAddress,
		Price:           total,
		StatusDelivery:  models.StatusPending,
		Details:         details,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID": order.ID,
			"userID":  order.UserID,
			"status":  order.StatusDelivery,
			"total":   order.Price,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		}
	} else {
		log.Println("RabbitMQ publisher is not initialized. Skipping message publication.")
	}

	return order, nil
}

// GetOrder retrieves a single order by its ID.
func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid order ID")
	}
	return s.orderRepo.GetByID(id)
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves all orders placed by a user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	if err := uuid.Validate(userID); err != nil {
		return nil, apperrors.NewValidation("invalid user ID")
	}
	return s.orderRepo.FindByUser(userID)
}

// UpdateOrderStatus updates the delivery status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if err := uuid.Validate(id); err != nil {
		return apperrors.NewValidation("invalid order ID")
	}
	validStatuses := map[string]bool{
		models.StatusPending:    true,
		models.StatusProcessing: true,
		models.StatusShipped:    true,
		models.StatusDelivered:  true,
		models.StatusCancelled:  true,
	}
	if !validStatuses[status] {
		return apperrors.NewValidation(fmt.Sprintf("invalid order status: %s", status))
	}

	return s.orderRepo.UpdateStatus(id, status)
}
