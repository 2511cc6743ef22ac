package table

// Header aliases accepted for each order field. The first alias is the
// canonical name written by Merge.
var (
	ColOrderNumber     = []string{"order_number", "订单号", "order no"}
	ColInnerDiameter   = []string{"inner_diameter", "内径"}
	ColOuterDiameter   = []string{"outer_diameter", "外径"}
	ColQuantity        = []string{"quantity", "数量", "订单数量"}
	ColSegments        = []string{"segments", "节数"}
	ColDailyRate       = []string{"daily_rate", "日产量"}
	ColProductionDays  = []string{"production_days", "生产天数"}
	ColShipped         = []string{"shipped_qty", "已发货数量"}
	ColUnshipped       = []string{"unshipped_qty", "未发货数量"}
	ColStock           = []string{"stock_qty", "管子库存", "stock"}
	ColStockArrival    = []string{"stock_arrival_date", "管子到货日期"}
	ColPreProcessed    = []string{"preprocessed_qty", "注塑完成", "injection_completed"}
	ColDeliveryDate    = []string{"delivery_date", "交货日期"}
	ColNotes           = []string{"notes", "备注", "status_notes"}
	ColCustomerModel   = []string{"customer_model", "客户型号", "model_code"}
	ColContractNumber  = []string{"contract_number", "合同号"}
	ColCustomerName    = []string{"customer_name", "客户名称"}
	ColSalesperson     = []string{"salesperson", "业务员"}
	ColShippingPlanTag = []string{"shipping_plan", "发货计划"}
)

// shippingPlanColumns are the fields only a shipping plan source carries
var shippingPlanColumns = [][]string{
	ColContractNumber,
	ColCustomerName,
	ColCustomerModel,
	ColSalesperson,
	ColDeliveryDate,
}
