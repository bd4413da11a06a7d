package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
	"resto-api/realtime"
	"resto-api/utils"
	"resto-api/utils/log"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrTerminalStatus    = errors.New("order is in a terminal status")
	ErrNoItems           = errors.New("no items provided")
	ErrBranchUnavailable = errors.New("branch not found or inactive")
)

type OrderService interface {
	Create(input dtos.CreateOrderInput) (*models.Order, error)
	ChangeStatus(orderID uint, newStatus string) (*models.Order, error)
}

type orderService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewOrderService(db *gorm.DB, hub *realtime.Hub) OrderService {
	return &orderService{db: db, hub: hub}
}

// nextOrderNumber assigns the next number for today, ORD-YYYYMMDD-NNN.
func (s *orderService) nextOrderNumber(tx *gorm.DB) (string, error) {
	today := time.Now().Format("20060102")

	var count int64
	if err := tx.Model(&models.Order{}).
		Where("order_number LIKE ?", "ORD-"+today+"-%").
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("ORD-%s-%03d", today, count+1), nil
}

func (s *orderService) resolveCustomer(tx *gorm.DB, input dtos.CreateOrderInput) (*models.Customer, error) {
	if input.CustomerPhone == "" {
		return nil, nil
	}

	var customer models.Customer
	if err := tx.Where("phone = ?", input.CustomerPhone).First(&customer).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		customer = models.Customer{
			Name:    input.CustomerName,
			Phone:   input.CustomerPhone,
			Email:   input.CustomerEmail,
			Address: input.CustomerAddr,
		}
		if customer.Name == "" {
			customer.Name = input.CustomerPhone
		}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	}

	// refresh contact details on repeat orders
	if input.CustomerName != "" {
		customer.Name = input.CustomerName
	}
	if input.CustomerEmail != nil {
		customer.Email = input.CustomerEmail
	}
	if input.CustomerAddr != nil {
		customer.Address = input.CustomerAddr
	}
	if err := tx.Save(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *orderService) Create(input dtos.CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	orderType := input.OrderType
	if orderType == "" {
		orderType = models.OrderTypePickup
	}
	if !models.IsValidOrderType(orderType) {
		return nil, fmt.Errorf("invalid order type %q", orderType)
	}

	var branch models.Branch
	if err := s.db.First(&branch, input.BranchID).Error; err != nil || !branch.Active {
		return nil, ErrBranchUnavailable
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := s.resolveCustomer(tx, input)
		if err != nil {
			return err
		}

		// snapshot unit prices at order time
		var total float64
		var items []models.OrderItem
		for _, in := range input.Items {
			if in.Quantity <= 0 {
				return fmt.Errorf("invalid quantity for product %d", in.ProductID)
			}

			var product models.Product
			if err := tx.First(&product, in.ProductID).Error; err != nil {
				return fmt.Errorf("product %d not found", in.ProductID)
			}
			if product.BranchID != input.BranchID || !product.Available {
				return fmt.Errorf("product %d not available at this branch", in.ProductID)
			}

			subtotal := float64(in.Quantity) * product.Price
			total += subtotal
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  in.Quantity,
				Price:     product.Price,
				Subtotal:  subtotal,
				Note:      in.Note,
			})
		}

		number, err := s.nextOrderNumber(tx)
		if err != nil {
			return err
		}

		order = models.Order{
			OrderNumber: number,
			BranchID:    input.BranchID,
			Total:       total,
			OrderType:   orderType,
			Platform:    input.Platform,
			Status:      models.StatusPending,
			Note:        input.Note,
			Items:       items,
		}
		if customer != nil {
			order.CustomerID = &customer.ID
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// reporting mirror, one row per order
		record := models.NewSalesRecord(order)
		return tx.Where(models.SalesRecord{OrderID: order.ID}).
			FirstOrCreate(&record).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Items.Product").Preload("Customer").First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	s.publishNewOrder(&order)
	go s.notifyNewOrder(order, branch)

	return &order, nil
}

// ChangeStatus persists the new status as a single-row update, then pushes
// the change to the order, branch and admin rooms. The push and the email
// are not transactional with the update: their failures are logged only.
func (s *orderService) ChangeStatus(orderID uint, newStatus string) (*models.Order, error) {
	if !models.IsValidStatus(newStatus) {
		return nil, ErrUnknownStatus
	}

	var order models.Order
	if err := s.db.Preload("Items.Product").Preload("Customer").Preload("Branch").
		First(&order, orderID).Error; err != nil {
		return nil, ErrOrderNotFound
	}

	if models.IsTerminalStatus(order.Status) {
		return nil, ErrTerminalStatus
	}

	now := time.Now()
	if err := s.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{"status": newStatus, "updated_at": now}).Error; err != nil {
		return nil, err
	}
	order.Status = newStatus
	order.UpdatedAt = now

	s.hub.BroadcastAll(
		[]string{realtime.OrderRoom(order.ID), realtime.BranchRoom(order.BranchID), realtime.AdminRoom},
		realtime.Event{
			Event: realtime.EventOrderStatusChanged,
			Data: realtime.OrderStatusPayload{
				OrderID:     order.ID,
				OrderNumber: order.OrderNumber,
				Status:      order.Status,
				StatusText:  models.StatusText(order.Status),
				BranchID:    order.BranchID,
				UpdatedAt:   order.UpdatedAt,
			},
		})
	s.publishDashboardUpdate(order.BranchID)

	switch order.Status {
	case models.StatusReady, models.StatusDelivered, models.StatusCancelled:
		go s.notifyStatusChange(order)
	}

	return &order, nil
}

func (s *orderService) publishNewOrder(order *models.Order) {
	s.hub.BroadcastAll(
		[]string{realtime.BranchRoom(order.BranchID), realtime.AdminRoom},
		realtime.Event{
			Event: realtime.EventNewOrder,
			Data: realtime.NewOrderPayload{
				OrderID:     order.ID,
				OrderNumber: order.OrderNumber,
				BranchID:    order.BranchID,
				Total:       order.Total,
				OrderType:   order.OrderType,
				Platform:    order.Platform,
				CreatedAt:   order.CreatedAt,
			},
		})
	s.publishDashboardUpdate(order.BranchID)
}

func (s *orderService) publishDashboardUpdate(branchID uint) {
	s.hub.Broadcast(realtime.AdminRoom, realtime.Event{
		Event: realtime.EventDashboardUpdate,
		Data:  map[string]any{"branch_id": branchID},
	})
}

func (s *orderService) notifyNewOrder(order models.Order, branch models.Branch) {
	if res := utils.SendNewOrderEmail(&order, order.Customer, &branch); !res.Success {
		log.Warn("new order email not sent",
			zap.String("order", order.OrderNumber), zap.String("reason", res.Error))
	}

	adminPhone := os.Getenv("WHATSAPP_ADMIN_PHONE")
	if adminPhone == "" {
		return
	}
	if err := utils.SendWhatsAppNotification(adminPhone, utils.FormatOrderMessage(&order, branch.Name)); err != nil {
		log.Warn("new order whatsapp not sent",
			zap.String("order", order.OrderNumber), zap.Error(err))
	}
}

func (s *orderService) notifyStatusChange(order models.Order) {
	var branch *models.Branch
	if order.Branch != nil {
		branch = order.Branch
	}
	if res := utils.SendOrderStatusEmail(&order, order.Customer, branch); !res.Success {
		log.Warn("status email not sent",
			zap.String("order", order.OrderNumber),
			zap.String("status", order.Status),
			zap.String("reason", res.Error))
	}
}
