package get_product_sales

import (
	"strconv"

	"github.com/m04kA/SMC-SalePlannerService/internal/service/sales/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
func ToServiceRequest(productID int64, platformIDStr, fromStr, toStr string) (*models.GetProductSalesRequest, error) {
	req := &models.GetProductSalesRequest{
		ProductID: productID,
	}

	if platformIDStr != "" {
		platformID, err := strconv.ParseInt(platformIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.PlatformID = &platformID
	}

	// Даты не парсим: валидацию формата делает сервис при сборке фильтра
	if fromStr != "" {
		req.From = &fromStr
	}

	if toStr != "" {
		req.To = &toStr
	}

	return req, nil
}
