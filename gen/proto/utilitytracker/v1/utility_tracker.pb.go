// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: utilitytracker/v1/utility_tracker.proto

package utilitytrackerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Invoice struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerNumber string                 `protobuf:"bytes,2,opt,name=customer_number,json=customerNumber,proto3" json:"customer_number,omitempty"`
	InvoiceNumber  string                 `protobuf:"bytes,3,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	Address        string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	InvoiceDate    string                 `protobuf:"bytes,5,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	DueDate        string                 `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`             // YYYY-MM-DD
	Amount         float64                `protobuf:"fixed64,7,opt,name=amount,proto3" json:"amount,omitempty"`
	IsPaid         bool                   `protobuf:"varint,8,opt,name=is_paid,json=isPaid,proto3" json:"is_paid,omitempty"`
	PaymentDate    string                 `protobuf:"bytes,9,opt,name=payment_date,json=paymentDate,proto3" json:"payment_date,omitempty"`  // YYYY-MM-DD, empty when unpaid
	UtilityType    string                 `protobuf:"bytes,10,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"` // "water" | "electricity"
	FileName       string                 `protobuf:"bytes,11,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath       string                 `protobuf:"bytes,12,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{0}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetCustomerNumber() string {
	if x != nil {
		return x.CustomerNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Invoice) GetIsPaid() bool {
	if x != nil {
		return x.IsPaid
	}
	return false
}

func (x *Invoice) GetPaymentDate() string {
	if x != nil {
		return x.PaymentDate
	}
	return ""
}

func (x *Invoice) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

func (x *Invoice) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Invoice) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

// ParsedInvoice is the best-effort output of the PDF field extractor.
// Unresolved fields keep their documented defaults (empty string, 0, water).
type ParsedInvoice struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CustomerNumber string                 `protobuf:"bytes,1,opt,name=customer_number,json=customerNumber,proto3" json:"customer_number,omitempty"`
	InvoiceNumber  string                 `protobuf:"bytes,2,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	Address        string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	InvoiceDate    string                 `protobuf:"bytes,4,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`
	DueDate        string                 `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	Amount         float64                `protobuf:"fixed64,6,opt,name=amount,proto3" json:"amount,omitempty"`
	IsPaid         bool                   `protobuf:"varint,7,opt,name=is_paid,json=isPaid,proto3" json:"is_paid,omitempty"`
	UtilityType    string                 `protobuf:"bytes,8,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"`
	FileName       string                 `protobuf:"bytes,9,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ParsedInvoice) Reset() {
	*x = ParsedInvoice{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsedInvoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsedInvoice) ProtoMessage() {}

func (x *ParsedInvoice) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsedInvoice.ProtoReflect.Descriptor instead.
func (*ParsedInvoice) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{1}
}

func (x *ParsedInvoice) GetCustomerNumber() string {
	if x != nil {
		return x.CustomerNumber
	}
	return ""
}

func (x *ParsedInvoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *ParsedInvoice) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ParsedInvoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *ParsedInvoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *ParsedInvoice) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *ParsedInvoice) GetIsPaid() bool {
	if x != nil {
		return x.IsPaid
	}
	return false
}

func (x *ParsedInvoice) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

func (x *ParsedInvoice) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

type ParseInvoicePdfRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseInvoicePdfRequest) Reset() {
	*x = ParseInvoicePdfRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseInvoicePdfRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseInvoicePdfRequest) ProtoMessage() {}

func (x *ParseInvoicePdfRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseInvoicePdfRequest.ProtoReflect.Descriptor instead.
func (*ParseInvoicePdfRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{2}
}

func (x *ParseInvoicePdfRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ParseInvoicePdfRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

type ParseInvoicePdfResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *ParsedInvoice         `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseInvoicePdfResponse) Reset() {
	*x = ParseInvoicePdfResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseInvoicePdfResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseInvoicePdfResponse) ProtoMessage() {}

func (x *ParseInvoicePdfResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseInvoicePdfResponse.ProtoReflect.Descriptor instead.
func (*ParseInvoicePdfResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{3}
}

func (x *ParseInvoicePdfResponse) GetInvoice() *ParsedInvoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type CreateInvoiceRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CustomerNumber string                 `protobuf:"bytes,1,opt,name=customer_number,json=customerNumber,proto3" json:"customer_number,omitempty"`
	InvoiceNumber  string                 `protobuf:"bytes,2,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	Address        string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	InvoiceDate    string                 `protobuf:"bytes,4,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // empty -> today
	DueDate        string                 `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`             // empty -> today + 14 days
	Amount         float64                `protobuf:"fixed64,6,opt,name=amount,proto3" json:"amount,omitempty"`
	IsPaid         bool                   `protobuf:"varint,7,opt,name=is_paid,json=isPaid,proto3" json:"is_paid,omitempty"`
	UtilityType    string                 `protobuf:"bytes,8,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"`
	FileName       string                 `protobuf:"bytes,9,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath       string                 `protobuf:"bytes,10,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateInvoiceRequest) Reset() {
	*x = CreateInvoiceRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInvoiceRequest) ProtoMessage() {}

func (x *CreateInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInvoiceRequest.ProtoReflect.Descriptor instead.
func (*CreateInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{4}
}

func (x *CreateInvoiceRequest) GetCustomerNumber() string {
	if x != nil {
		return x.CustomerNumber
	}
	return ""
}

func (x *CreateInvoiceRequest) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *CreateInvoiceRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreateInvoiceRequest) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *CreateInvoiceRequest) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *CreateInvoiceRequest) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *CreateInvoiceRequest) GetIsPaid() bool {
	if x != nil {
		return x.IsPaid
	}
	return false
}

func (x *CreateInvoiceRequest) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

func (x *CreateInvoiceRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *CreateInvoiceRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

type CreateInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInvoiceResponse) Reset() {
	*x = CreateInvoiceResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInvoiceResponse) ProtoMessage() {}

func (x *CreateInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInvoiceResponse.ProtoReflect.Descriptor instead.
func (*CreateInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{5}
}

func (x *CreateInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`                                  // empty -> all
	UtilityType   string                 `protobuf:"bytes,2,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"`       // "water" | "electricity" | "" (all)
	PaymentStatus string                 `protobuf:"bytes,3,opt,name=payment_status,json=paymentStatus,proto3" json:"payment_status,omitempty"` // "paid" | "unpaid" | "" (all)
	FromDate      string                 `protobuf:"bytes,4,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`                // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,5,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`                      // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{6}
}

func (x *ListInvoicesRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ListInvoicesRequest) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

func (x *ListInvoicesRequest) GetPaymentStatus() string {
	if x != nil {
		return x.PaymentStatus
	}
	return ""
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{7}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type UpdateInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateInvoiceRequest) Reset() {
	*x = UpdateInvoiceRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInvoiceRequest) ProtoMessage() {}

func (x *UpdateInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInvoiceRequest.ProtoReflect.Descriptor instead.
func (*UpdateInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateInvoiceRequest) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type UpdateInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateInvoiceResponse) Reset() {
	*x = UpdateInvoiceResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInvoiceResponse) ProtoMessage() {}

func (x *UpdateInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInvoiceResponse.ProtoReflect.Descriptor instead.
func (*UpdateInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type MarkInvoicePaidRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PaymentDate   string                 `protobuf:"bytes,2,opt,name=payment_date,json=paymentDate,proto3" json:"payment_date,omitempty"` // empty -> today
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkInvoicePaidRequest) Reset() {
	*x = MarkInvoicePaidRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkInvoicePaidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkInvoicePaidRequest) ProtoMessage() {}

func (x *MarkInvoicePaidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkInvoicePaidRequest.ProtoReflect.Descriptor instead.
func (*MarkInvoicePaidRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{10}
}

func (x *MarkInvoicePaidRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MarkInvoicePaidRequest) GetPaymentDate() string {
	if x != nil {
		return x.PaymentDate
	}
	return ""
}

type MarkInvoicePaidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkInvoicePaidResponse) Reset() {
	*x = MarkInvoicePaidResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkInvoicePaidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkInvoicePaidResponse) ProtoMessage() {}

func (x *MarkInvoicePaidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkInvoicePaidResponse.ProtoReflect.Descriptor instead.
func (*MarkInvoicePaidResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{11}
}

func (x *MarkInvoicePaidResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type DeleteInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInvoiceRequest) Reset() {
	*x = DeleteInvoiceRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInvoiceRequest) ProtoMessage() {}

func (x *DeleteInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInvoiceRequest.ProtoReflect.Descriptor instead.
func (*DeleteInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteInvoiceRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInvoiceResponse) Reset() {
	*x = DeleteInvoiceResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInvoiceResponse) ProtoMessage() {}

func (x *DeleteInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInvoiceResponse.ProtoReflect.Descriptor instead.
func (*DeleteInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{13}
}

type InvoiceStats struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	UnpaidTotal float64                `protobuf:"fixed64,1,opt,name=unpaid_total,json=unpaidTotal,proto3" json:"unpaid_total,omitempty"`
	UnpaidCount int32                  `protobuf:"varint,2,opt,name=unpaid_count,json=unpaidCount,proto3" json:"unpaid_count,omitempty"`
	TotalCount  int32                  `protobuf:"varint,3,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	// Percentage difference of the newest invoice per address+utility
	// against the average of its predecessors; absent entries had no history.
	PercentageDifference map[string]float64 `protobuf:"bytes,4,rep,name=percentage_difference,json=percentageDifference,proto3" json:"percentage_difference,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	// Invoice amount totals per calendar month, keyed "YYYY-MM".
	MonthlyTotals map[string]float64 `protobuf:"bytes,5,rep,name=monthly_totals,json=monthlyTotals,proto3" json:"monthly_totals,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvoiceStats) Reset() {
	*x = InvoiceStats{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceStats) ProtoMessage() {}

func (x *InvoiceStats) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceStats.ProtoReflect.Descriptor instead.
func (*InvoiceStats) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{14}
}

func (x *InvoiceStats) GetUnpaidTotal() float64 {
	if x != nil {
		return x.UnpaidTotal
	}
	return 0
}

func (x *InvoiceStats) GetUnpaidCount() int32 {
	if x != nil {
		return x.UnpaidCount
	}
	return 0
}

func (x *InvoiceStats) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *InvoiceStats) GetPercentageDifference() map[string]float64 {
	if x != nil {
		return x.PercentageDifference
	}
	return nil
}

func (x *InvoiceStats) GetMonthlyTotals() map[string]float64 {
	if x != nil {
		return x.MonthlyTotals
	}
	return nil
}

type GetInvoiceStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"` // empty -> all addresses
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceStatsRequest) Reset() {
	*x = GetInvoiceStatsRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceStatsRequest) ProtoMessage() {}

func (x *GetInvoiceStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceStatsRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceStatsRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{15}
}

func (x *GetInvoiceStatsRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type GetInvoiceStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *InvoiceStats          `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceStatsResponse) Reset() {
	*x = GetInvoiceStatsResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceStatsResponse) ProtoMessage() {}

func (x *GetInvoiceStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceStatsResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceStatsResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{16}
}

func (x *GetInvoiceStatsResponse) GetStats() *InvoiceStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type MeterReading struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Address            string                 `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	ReadingDate        string                 `protobuf:"bytes,3,opt,name=reading_date,json=readingDate,proto3" json:"reading_date,omitempty"`      // YYYY-MM-DD
	WaterReading       float64                `protobuf:"fixed64,4,opt,name=water_reading,json=waterReading,proto3" json:"water_reading,omitempty"` // 0 when not set, see has_* flags
	ElectricityReading float64                `protobuf:"fixed64,5,opt,name=electricity_reading,json=electricityReading,proto3" json:"electricity_reading,omitempty"`
	HasWater           bool                   `protobuf:"varint,6,opt,name=has_water,json=hasWater,proto3" json:"has_water,omitempty"`
	HasElectricity     bool                   `protobuf:"varint,7,opt,name=has_electricity,json=hasElectricity,proto3" json:"has_electricity,omitempty"`
	Notes              string                 `protobuf:"bytes,8,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *MeterReading) Reset() {
	*x = MeterReading{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MeterReading) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MeterReading) ProtoMessage() {}

func (x *MeterReading) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MeterReading.ProtoReflect.Descriptor instead.
func (*MeterReading) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{17}
}

func (x *MeterReading) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MeterReading) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *MeterReading) GetReadingDate() string {
	if x != nil {
		return x.ReadingDate
	}
	return ""
}

func (x *MeterReading) GetWaterReading() float64 {
	if x != nil {
		return x.WaterReading
	}
	return 0
}

func (x *MeterReading) GetElectricityReading() float64 {
	if x != nil {
		return x.ElectricityReading
	}
	return 0
}

func (x *MeterReading) GetHasWater() bool {
	if x != nil {
		return x.HasWater
	}
	return false
}

func (x *MeterReading) GetHasElectricity() bool {
	if x != nil {
		return x.HasElectricity
	}
	return false
}

func (x *MeterReading) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *MeterReading) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type RecordReadingRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Address            string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	ReadingDate        string                 `protobuf:"bytes,2,opt,name=reading_date,json=readingDate,proto3" json:"reading_date,omitempty"` // empty -> today
	WaterReading       float64                `protobuf:"fixed64,3,opt,name=water_reading,json=waterReading,proto3" json:"water_reading,omitempty"`
	ElectricityReading float64                `protobuf:"fixed64,4,opt,name=electricity_reading,json=electricityReading,proto3" json:"electricity_reading,omitempty"`
	HasWater           bool                   `protobuf:"varint,5,opt,name=has_water,json=hasWater,proto3" json:"has_water,omitempty"`
	HasElectricity     bool                   `protobuf:"varint,6,opt,name=has_electricity,json=hasElectricity,proto3" json:"has_electricity,omitempty"`
	Notes              string                 `protobuf:"bytes,7,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *RecordReadingRequest) Reset() {
	*x = RecordReadingRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordReadingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordReadingRequest) ProtoMessage() {}

func (x *RecordReadingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordReadingRequest.ProtoReflect.Descriptor instead.
func (*RecordReadingRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{18}
}

func (x *RecordReadingRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *RecordReadingRequest) GetReadingDate() string {
	if x != nil {
		return x.ReadingDate
	}
	return ""
}

func (x *RecordReadingRequest) GetWaterReading() float64 {
	if x != nil {
		return x.WaterReading
	}
	return 0
}

func (x *RecordReadingRequest) GetElectricityReading() float64 {
	if x != nil {
		return x.ElectricityReading
	}
	return 0
}

func (x *RecordReadingRequest) GetHasWater() bool {
	if x != nil {
		return x.HasWater
	}
	return false
}

func (x *RecordReadingRequest) GetHasElectricity() bool {
	if x != nil {
		return x.HasElectricity
	}
	return false
}

func (x *RecordReadingRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type RecordReadingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reading       *MeterReading          `protobuf:"bytes,1,opt,name=reading,proto3" json:"reading,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordReadingResponse) Reset() {
	*x = RecordReadingResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordReadingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordReadingResponse) ProtoMessage() {}

func (x *RecordReadingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordReadingResponse.ProtoReflect.Descriptor instead.
func (*RecordReadingResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{19}
}

func (x *RecordReadingResponse) GetReading() *MeterReading {
	if x != nil {
		return x.Reading
	}
	return nil
}

type ListReadingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReadingsRequest) Reset() {
	*x = ListReadingsRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReadingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReadingsRequest) ProtoMessage() {}

func (x *ListReadingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReadingsRequest.ProtoReflect.Descriptor instead.
func (*ListReadingsRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{20}
}

func (x *ListReadingsRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ListReadingsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReadingsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReadingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Readings      []*MeterReading        `protobuf:"bytes,1,rep,name=readings,proto3" json:"readings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReadingsResponse) Reset() {
	*x = ListReadingsResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReadingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReadingsResponse) ProtoMessage() {}

func (x *ListReadingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReadingsResponse.ProtoReflect.Descriptor instead.
func (*ListReadingsResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{21}
}

func (x *ListReadingsResponse) GetReadings() []*MeterReading {
	if x != nil {
		return x.Readings
	}
	return nil
}

type GetLatestReadingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestReadingRequest) Reset() {
	*x = GetLatestReadingRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestReadingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestReadingRequest) ProtoMessage() {}

func (x *GetLatestReadingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestReadingRequest.ProtoReflect.Descriptor instead.
func (*GetLatestReadingRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{22}
}

func (x *GetLatestReadingRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type GetLatestReadingResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Reading *MeterReading          `protobuf:"bytes,1,opt,name=reading,proto3" json:"reading,omitempty"`
	// Consumption since the previous reading of the same meter; the has_*
	// flags are false when no earlier reading carries that meter.
	WaterDelta          float64 `protobuf:"fixed64,2,opt,name=water_delta,json=waterDelta,proto3" json:"water_delta,omitempty"`
	ElectricityDelta    float64 `protobuf:"fixed64,3,opt,name=electricity_delta,json=electricityDelta,proto3" json:"electricity_delta,omitempty"`
	HasWaterDelta       bool    `protobuf:"varint,4,opt,name=has_water_delta,json=hasWaterDelta,proto3" json:"has_water_delta,omitempty"`
	HasElectricityDelta bool    `protobuf:"varint,5,opt,name=has_electricity_delta,json=hasElectricityDelta,proto3" json:"has_electricity_delta,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *GetLatestReadingResponse) Reset() {
	*x = GetLatestReadingResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestReadingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestReadingResponse) ProtoMessage() {}

func (x *GetLatestReadingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestReadingResponse.ProtoReflect.Descriptor instead.
func (*GetLatestReadingResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{23}
}

func (x *GetLatestReadingResponse) GetReading() *MeterReading {
	if x != nil {
		return x.Reading
	}
	return nil
}

func (x *GetLatestReadingResponse) GetWaterDelta() float64 {
	if x != nil {
		return x.WaterDelta
	}
	return 0
}

func (x *GetLatestReadingResponse) GetElectricityDelta() float64 {
	if x != nil {
		return x.ElectricityDelta
	}
	return 0
}

func (x *GetLatestReadingResponse) GetHasWaterDelta() bool {
	if x != nil {
		return x.HasWaterDelta
	}
	return false
}

func (x *GetLatestReadingResponse) GetHasElectricityDelta() bool {
	if x != nil {
		return x.HasElectricityDelta
	}
	return false
}

type TimeSession struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Category       string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	CustomCategory string                 `protobuf:"bytes,3,opt,name=custom_category,json=customCategory,proto3" json:"custom_category,omitempty"`
	StartTime      string                 `protobuf:"bytes,4,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"` // RFC 3339
	EndTime        string                 `protobuf:"bytes,5,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`       // RFC 3339, empty while running
	Notes          string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *TimeSession) Reset() {
	*x = TimeSession{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimeSession) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimeSession) ProtoMessage() {}

func (x *TimeSession) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimeSession.ProtoReflect.Descriptor instead.
func (*TimeSession) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{24}
}

func (x *TimeSession) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TimeSession) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *TimeSession) GetCustomCategory() string {
	if x != nil {
		return x.CustomCategory
	}
	return ""
}

func (x *TimeSession) GetStartTime() string {
	if x != nil {
		return x.StartTime
	}
	return ""
}

func (x *TimeSession) GetEndTime() string {
	if x != nil {
		return x.EndTime
	}
	return ""
}

func (x *TimeSession) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *TimeSession) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *TimeSession) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type StartSessionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Category       string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	CustomCategory string                 `protobuf:"bytes,2,opt,name=custom_category,json=customCategory,proto3" json:"custom_category,omitempty"`
	Notes          string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *StartSessionRequest) Reset() {
	*x = StartSessionRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionRequest) ProtoMessage() {}

func (x *StartSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionRequest.ProtoReflect.Descriptor instead.
func (*StartSessionRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{25}
}

func (x *StartSessionRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *StartSessionRequest) GetCustomCategory() string {
	if x != nil {
		return x.CustomCategory
	}
	return ""
}

func (x *StartSessionRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type StartSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *TimeSession           `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartSessionResponse) Reset() {
	*x = StartSessionResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionResponse) ProtoMessage() {}

func (x *StartSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionResponse.ProtoReflect.Descriptor instead.
func (*StartSessionResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{26}
}

func (x *StartSessionResponse) GetSession() *TimeSession {
	if x != nil {
		return x.Session
	}
	return nil
}

type StopSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StopSessionRequest) Reset() {
	*x = StopSessionRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopSessionRequest) ProtoMessage() {}

func (x *StopSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopSessionRequest.ProtoReflect.Descriptor instead.
func (*StopSessionRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{27}
}

func (x *StopSessionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type StopSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *TimeSession           `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StopSessionResponse) Reset() {
	*x = StopSessionResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopSessionResponse) ProtoMessage() {}

func (x *StopSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopSessionResponse.ProtoReflect.Descriptor instead.
func (*StopSessionResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{28}
}

func (x *StopSessionResponse) GetSession() *TimeSession {
	if x != nil {
		return x.Session
	}
	return nil
}

type ListSessionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsRequest) Reset() {
	*x = ListSessionsRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsRequest) ProtoMessage() {}

func (x *ListSessionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsRequest.ProtoReflect.Descriptor instead.
func (*ListSessionsRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{29}
}

func (x *ListSessionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListSessionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListSessionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sessions      []*TimeSession         `protobuf:"bytes,1,rep,name=sessions,proto3" json:"sessions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsResponse) Reset() {
	*x = ListSessionsResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsResponse) ProtoMessage() {}

func (x *ListSessionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsResponse.ProtoReflect.Descriptor instead.
func (*ListSessionsResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{30}
}

func (x *ListSessionsResponse) GetSessions() []*TimeSession {
	if x != nil {
		return x.Sessions
	}
	return nil
}

type DeleteSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSessionRequest) Reset() {
	*x = DeleteSessionRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSessionRequest) ProtoMessage() {}

func (x *DeleteSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSessionRequest.ProtoReflect.Descriptor instead.
func (*DeleteSessionRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{31}
}

func (x *DeleteSessionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSessionResponse) Reset() {
	*x = DeleteSessionResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSessionResponse) ProtoMessage() {}

func (x *DeleteSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSessionResponse.ProtoReflect.Descriptor instead.
func (*DeleteSessionResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{32}
}

type UtilityPrice struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UtilityType    string                 `protobuf:"bytes,2,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"`
	PricePerUnit   float64                `protobuf:"fixed64,3,opt,name=price_per_unit,json=pricePerUnit,proto3" json:"price_per_unit,omitempty"`
	UnitName       string                 `protobuf:"bytes,4,opt,name=unit_name,json=unitName,proto3" json:"unit_name,omitempty"`
	Currency       string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	EffectiveFrom  string                 `protobuf:"bytes,6,opt,name=effective_from,json=effectiveFrom,proto3" json:"effective_from,omitempty"`
	EffectiveUntil string                 `protobuf:"bytes,7,opt,name=effective_until,json=effectiveUntil,proto3" json:"effective_until,omitempty"` // empty -> open-ended
	CreatedAt      string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UtilityPrice) Reset() {
	*x = UtilityPrice{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UtilityPrice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UtilityPrice) ProtoMessage() {}

func (x *UtilityPrice) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UtilityPrice.ProtoReflect.Descriptor instead.
func (*UtilityPrice) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{33}
}

func (x *UtilityPrice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UtilityPrice) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

func (x *UtilityPrice) GetPricePerUnit() float64 {
	if x != nil {
		return x.PricePerUnit
	}
	return 0
}

func (x *UtilityPrice) GetUnitName() string {
	if x != nil {
		return x.UnitName
	}
	return ""
}

func (x *UtilityPrice) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *UtilityPrice) GetEffectiveFrom() string {
	if x != nil {
		return x.EffectiveFrom
	}
	return ""
}

func (x *UtilityPrice) GetEffectiveUntil() string {
	if x != nil {
		return x.EffectiveUntil
	}
	return ""
}

func (x *UtilityPrice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetCurrentPriceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UtilityType   string                 `protobuf:"bytes,1,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurrentPriceRequest) Reset() {
	*x = GetCurrentPriceRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentPriceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentPriceRequest) ProtoMessage() {}

func (x *GetCurrentPriceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentPriceRequest.ProtoReflect.Descriptor instead.
func (*GetCurrentPriceRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{34}
}

func (x *GetCurrentPriceRequest) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

type GetCurrentPriceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         *UtilityPrice          `protobuf:"bytes,1,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurrentPriceResponse) Reset() {
	*x = GetCurrentPriceResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentPriceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentPriceResponse) ProtoMessage() {}

func (x *GetCurrentPriceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentPriceResponse.ProtoReflect.Descriptor instead.
func (*GetCurrentPriceResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{35}
}

func (x *GetCurrentPriceResponse) GetPrice() *UtilityPrice {
	if x != nil {
		return x.Price
	}
	return nil
}

type SetPriceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UtilityType   string                 `protobuf:"bytes,1,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"`
	PricePerUnit  float64                `protobuf:"fixed64,2,opt,name=price_per_unit,json=pricePerUnit,proto3" json:"price_per_unit,omitempty"`
	UnitName      string                 `protobuf:"bytes,3,opt,name=unit_name,json=unitName,proto3" json:"unit_name,omitempty"`
	Currency      string                 `protobuf:"bytes,4,opt,name=currency,proto3" json:"currency,omitempty"`
	EffectiveFrom string                 `protobuf:"bytes,5,opt,name=effective_from,json=effectiveFrom,proto3" json:"effective_from,omitempty"` // empty -> now
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPriceRequest) Reset() {
	*x = SetPriceRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPriceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPriceRequest) ProtoMessage() {}

func (x *SetPriceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPriceRequest.ProtoReflect.Descriptor instead.
func (*SetPriceRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{36}
}

func (x *SetPriceRequest) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

func (x *SetPriceRequest) GetPricePerUnit() float64 {
	if x != nil {
		return x.PricePerUnit
	}
	return 0
}

func (x *SetPriceRequest) GetUnitName() string {
	if x != nil {
		return x.UnitName
	}
	return ""
}

func (x *SetPriceRequest) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *SetPriceRequest) GetEffectiveFrom() string {
	if x != nil {
		return x.EffectiveFrom
	}
	return ""
}

type SetPriceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         *UtilityPrice          `protobuf:"bytes,1,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPriceResponse) Reset() {
	*x = SetPriceResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPriceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPriceResponse) ProtoMessage() {}

func (x *SetPriceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPriceResponse.ProtoReflect.Descriptor instead.
func (*SetPriceResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{37}
}

func (x *SetPriceResponse) GetPrice() *UtilityPrice {
	if x != nil {
		return x.Price
	}
	return nil
}

type ListPricesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UtilityType   string                 `protobuf:"bytes,1,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"` // empty -> all
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPricesRequest) Reset() {
	*x = ListPricesRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPricesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPricesRequest) ProtoMessage() {}

func (x *ListPricesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPricesRequest.ProtoReflect.Descriptor instead.
func (*ListPricesRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{38}
}

func (x *ListPricesRequest) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

type ListPricesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prices        []*UtilityPrice        `protobuf:"bytes,1,rep,name=prices,proto3" json:"prices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPricesResponse) Reset() {
	*x = ListPricesResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPricesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPricesResponse) ProtoMessage() {}

func (x *ListPricesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPricesResponse.ProtoReflect.Descriptor instead.
func (*ListPricesResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{39}
}

func (x *ListPricesResponse) GetPrices() []*UtilityPrice {
	if x != nil {
		return x.Prices
	}
	return nil
}

type ImportFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportFileRequest) Reset() {
	*x = ImportFileRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFileRequest) ProtoMessage() {}

func (x *ImportFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFileRequest.ProtoReflect.Descriptor instead.
func (*ImportFileRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{40}
}

func (x *ImportFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ImportFileResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SourcePath     string                 `protobuf:"bytes,1,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	InvoiceId      string                 `protobuf:"bytes,2,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"` // empty when deduplicated or failed
	Deduplicated   bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`           // an invoice with the same numbers already exists
	ContentHashHex string                 `protobuf:"bytes,4,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Error          string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ImportFileResponse) Reset() {
	*x = ImportFileResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFileResponse) ProtoMessage() {}

func (x *ImportFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFileResponse.ProtoReflect.Descriptor instead.
func (*ImportFileResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{41}
}

func (x *ImportFileResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *ImportFileResponse) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ImportFileResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *ImportFileResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *ImportFileResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ImportDirectoryRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	RootPath   string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	// Process files on the background queue instead of inline.
	Async         bool `protobuf:"varint,3,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportDirectoryRequest) Reset() {
	*x = ImportDirectoryRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportDirectoryRequest) ProtoMessage() {}

func (x *ImportDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportDirectoryRequest.ProtoReflect.Descriptor instead.
func (*ImportDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{42}
}

func (x *ImportDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *ImportDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

func (x *ImportDirectoryRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type ImportDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*ImportFileResponse  `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportDirectoryResponse) Reset() {
	*x = ImportDirectoryResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportDirectoryResponse) ProtoMessage() {}

func (x *ImportDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportDirectoryResponse.ProtoReflect.Descriptor instead.
func (*ImportDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{43}
}

func (x *ImportDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ImportDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *ImportDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ImportDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *ImportDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ImportDirectoryResponse) GetResults() []*ImportFileResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	UtilityType   string                 `protobuf:"bytes,2,opt,name=utility_type,json=utilityType,proto3" json:"utility_type,omitempty"`
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{44}
}

func (x *ExportInvoicesRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ExportInvoicesRequest) GetUtilityType() string {
	if x != nil {
		return x.UtilityType
	}
	return ""
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{45}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportReadingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReadingsRequest) Reset() {
	*x = ExportReadingsRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReadingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReadingsRequest) ProtoMessage() {}

func (x *ExportReadingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReadingsRequest.ProtoReflect.Descriptor instead.
func (*ExportReadingsRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{46}
}

func (x *ExportReadingsRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ExportReadingsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReadingsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReadingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReadingsResponse) Reset() {
	*x = ExportReadingsResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReadingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReadingsResponse) ProtoMessage() {}

func (x *ExportReadingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReadingsResponse.ProtoReflect.Descriptor instead.
func (*ExportReadingsResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{47}
}

func (x *ExportReadingsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportSessionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSessionsRequest) Reset() {
	*x = ExportSessionsRequest{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSessionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSessionsRequest) ProtoMessage() {}

func (x *ExportSessionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSessionsRequest.ProtoReflect.Descriptor instead.
func (*ExportSessionsRequest) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{48}
}

func (x *ExportSessionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportSessionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportSessionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSessionsResponse) Reset() {
	*x = ExportSessionsResponse{}
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSessionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSessionsResponse) ProtoMessage() {}

func (x *ExportSessionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_utilitytracker_v1_utility_tracker_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSessionsResponse.ProtoReflect.Descriptor instead.
func (*ExportSessionsResponse) Descriptor() ([]byte, []int) {
	return file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP(), []int{49}
}

func (x *ExportSessionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_utilitytracker_v1_utility_tracker_proto protoreflect.FileDescriptor

const file_utilitytracker_v1_utility_tracker_proto_rawDesc = "" +
	"\n" +
	"'utilitytracker/v1/utility_tracker.proto\x12\x11utilitytracker.v1\"\xb0\x03\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0fcustomer_number\x18\x02 \x01(\tR\x0ecustomerNumber\x12%\n" +
	"\x0einvoice_number\x18\x03 \x01(\tR\rinvoiceNumber\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12!\n" +
	"\finvoice_date\x18\x05 \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\x06 \x01(\tR\adueDate\x12\x16\n" +
	"\x06amount\x18\a \x01(\x01R\x06amount\x12\x17\n" +
	"\ais_paid\x18\b \x01(\bR\x06isPaid\x12!\n" +
	"\fpayment_date\x18\t \x01(\tR\vpaymentDate\x12!\n" +
	"\futility_type\x18\n" +
	" \x01(\tR\vutilityType\x12\x1b\n" +
	"\tfile_name\x18\v \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\f \x01(\tR\bfilePath\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\xa8\x02\n" +
	"\rParsedInvoice\x12'\n" +
	"\x0fcustomer_number\x18\x01 \x01(\tR\x0ecustomerNumber\x12%\n" +
	"\x0einvoice_number\x18\x02 \x01(\tR\rinvoiceNumber\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12!\n" +
	"\finvoice_date\x18\x04 \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\x05 \x01(\tR\adueDate\x12\x16\n" +
	"\x06amount\x18\x06 \x01(\x01R\x06amount\x12\x17\n" +
	"\ais_paid\x18\a \x01(\bR\x06isPaid\x12!\n" +
	"\futility_type\x18\b \x01(\tR\vutilityType\x12\x1b\n" +
	"\tfile_name\x18\t \x01(\tR\bfileName\"O\n" +
	"\x16ParseInvoicePdfRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\"U\n" +
	"\x17ParseInvoicePdfResponse\x12:\n" +
	"\ainvoice\x18\x01 \x01(\v2 .utilitytracker.v1.ParsedInvoiceR\ainvoice\"\xcc\x02\n" +
	"\x14CreateInvoiceRequest\x12'\n" +
	"\x0fcustomer_number\x18\x01 \x01(\tR\x0ecustomerNumber\x12%\n" +
	"\x0einvoice_number\x18\x02 \x01(\tR\rinvoiceNumber\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12!\n" +
	"\finvoice_date\x18\x04 \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\x05 \x01(\tR\adueDate\x12\x16\n" +
	"\x06amount\x18\x06 \x01(\x01R\x06amount\x12\x17\n" +
	"\ais_paid\x18\a \x01(\bR\x06isPaid\x12!\n" +
	"\futility_type\x18\b \x01(\tR\vutilityType\x12\x1b\n" +
	"\tfile_name\x18\t \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\n" +
	" \x01(\tR\bfilePath\"M\n" +
	"\x15CreateInvoiceResponse\x124\n" +
	"\ainvoice\x18\x01 \x01(\v2\x1a.utilitytracker.v1.InvoiceR\ainvoice\"\xaf\x01\n" +
	"\x13ListInvoicesRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12!\n" +
	"\futility_type\x18\x02 \x01(\tR\vutilityType\x12%\n" +
	"\x0epayment_status\x18\x03 \x01(\tR\rpaymentStatus\x12\x1b\n" +
	"\tfrom_date\x18\x04 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x05 \x01(\tR\x06toDate\"N\n" +
	"\x14ListInvoicesResponse\x126\n" +
	"\binvoices\x18\x01 \x03(\v2\x1a.utilitytracker.v1.InvoiceR\binvoices\"L\n" +
	"\x14UpdateInvoiceRequest\x124\n" +
	"\ainvoice\x18\x01 \x01(\v2\x1a.utilitytracker.v1.InvoiceR\ainvoice\"M\n" +
	"\x15UpdateInvoiceResponse\x124\n" +
	"\ainvoice\x18\x01 \x01(\v2\x1a.utilitytracker.v1.InvoiceR\ainvoice\"K\n" +
	"\x16MarkInvoicePaidRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fpayment_date\x18\x02 \x01(\tR\vpaymentDate\"O\n" +
	"\x17MarkInvoicePaidResponse\x124\n" +
	"\ainvoice\x18\x01 \x01(\v2\x1a.utilitytracker.v1.InvoiceR\ainvoice\"&\n" +
	"\x14DeleteInvoiceRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeleteInvoiceResponse\"\xcb\x03\n" +
	"\fInvoiceStats\x12!\n" +
	"\funpaid_total\x18\x01 \x01(\x01R\vunpaidTotal\x12!\n" +
	"\funpaid_count\x18\x02 \x01(\x05R\vunpaidCount\x12\x1f\n" +
	"\vtotal_count\x18\x03 \x01(\x05R\n" +
	"totalCount\x12n\n" +
	"\x15percentage_difference\x18\x04 \x03(\v29.utilitytracker.v1.InvoiceStats.PercentageDifferenceEntryR\x14percentageDifference\x12Y\n" +
	"\x0emonthly_totals\x18\x05 \x03(\v22.utilitytracker.v1.InvoiceStats.MonthlyTotalsEntryR\rmonthlyTotals\x1aG\n" +
	"\x19PercentageDifferenceEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\x1a@\n" +
	"\x12MonthlyTotalsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"2\n" +
	"\x16GetInvoiceStatsRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"P\n" +
	"\x17GetInvoiceStatsResponse\x125\n" +
	"\x05stats\x18\x01 \x01(\v2\x1f.utilitytracker.v1.InvoiceStatsR\x05stats\"\xac\x02\n" +
	"\fMeterReading\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\aaddress\x18\x02 \x01(\tR\aaddress\x12!\n" +
	"\freading_date\x18\x03 \x01(\tR\vreadingDate\x12#\n" +
	"\rwater_reading\x18\x04 \x01(\x01R\fwaterReading\x12/\n" +
	"\x13electricity_reading\x18\x05 \x01(\x01R\x12electricityReading\x12\x1b\n" +
	"\thas_water\x18\x06 \x01(\bR\bhasWater\x12'\n" +
	"\x0fhas_electricity\x18\a \x01(\bR\x0ehasElectricity\x12\x14\n" +
	"\x05notes\x18\b \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\x85\x02\n" +
	"\x14RecordReadingRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12!\n" +
	"\freading_date\x18\x02 \x01(\tR\vreadingDate\x12#\n" +
	"\rwater_reading\x18\x03 \x01(\x01R\fwaterReading\x12/\n" +
	"\x13electricity_reading\x18\x04 \x01(\x01R\x12electricityReading\x12\x1b\n" +
	"\thas_water\x18\x05 \x01(\bR\bhasWater\x12'\n" +
	"\x0fhas_electricity\x18\x06 \x01(\bR\x0ehasElectricity\x12\x14\n" +
	"\x05notes\x18\a \x01(\tR\x05notes\"R\n" +
	"\x15RecordReadingResponse\x129\n" +
	"\areading\x18\x01 \x01(\v2\x1f.utilitytracker.v1.MeterReadingR\areading\"e\n" +
	"\x13ListReadingsRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"S\n" +
	"\x14ListReadingsResponse\x12;\n" +
	"\breadings\x18\x01 \x03(\v2\x1f.utilitytracker.v1.MeterReadingR\breadings\"3\n" +
	"\x17GetLatestReadingRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"\xff\x01\n" +
	"\x18GetLatestReadingResponse\x129\n" +
	"\areading\x18\x01 \x01(\v2\x1f.utilitytracker.v1.MeterReadingR\areading\x12\x1f\n" +
	"\vwater_delta\x18\x02 \x01(\x01R\n" +
	"waterDelta\x12+\n" +
	"\x11electricity_delta\x18\x03 \x01(\x01R\x10electricityDelta\x12&\n" +
	"\x0fhas_water_delta\x18\x04 \x01(\bR\rhasWaterDelta\x122\n" +
	"\x15has_electricity_delta\x18\x05 \x01(\bR\x13hasElectricityDelta\"\xf0\x01\n" +
	"\vTimeSession\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12'\n" +
	"\x0fcustom_category\x18\x03 \x01(\tR\x0ecustomCategory\x12\x1d\n" +
	"\n" +
	"start_time\x18\x04 \x01(\tR\tstartTime\x12\x19\n" +
	"\bend_time\x18\x05 \x01(\tR\aendTime\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"p\n" +
	"\x13StartSessionRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12'\n" +
	"\x0fcustom_category\x18\x02 \x01(\tR\x0ecustomCategory\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\"P\n" +
	"\x14StartSessionResponse\x128\n" +
	"\asession\x18\x01 \x01(\v2\x1e.utilitytracker.v1.TimeSessionR\asession\"$\n" +
	"\x12StopSessionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"O\n" +
	"\x13StopSessionResponse\x128\n" +
	"\asession\x18\x01 \x01(\v2\x1e.utilitytracker.v1.TimeSessionR\asession\"K\n" +
	"\x13ListSessionsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"R\n" +
	"\x14ListSessionsResponse\x12:\n" +
	"\bsessions\x18\x01 \x03(\v2\x1e.utilitytracker.v1.TimeSessionR\bsessions\"&\n" +
	"\x14DeleteSessionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeleteSessionResponse\"\x8f\x02\n" +
	"\fUtilityPrice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\futility_type\x18\x02 \x01(\tR\vutilityType\x12$\n" +
	"\x0eprice_per_unit\x18\x03 \x01(\x01R\fpricePerUnit\x12\x1b\n" +
	"\tunit_name\x18\x04 \x01(\tR\bunitName\x12\x1a\n" +
	"\bcurrency\x18\x05 \x01(\tR\bcurrency\x12%\n" +
	"\x0eeffective_from\x18\x06 \x01(\tR\reffectiveFrom\x12'\n" +
	"\x0feffective_until\x18\a \x01(\tR\x0eeffectiveUntil\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\";\n" +
	"\x16GetCurrentPriceRequest\x12!\n" +
	"\futility_type\x18\x01 \x01(\tR\vutilityType\"P\n" +
	"\x17GetCurrentPriceResponse\x125\n" +
	"\x05price\x18\x01 \x01(\v2\x1f.utilitytracker.v1.UtilityPriceR\x05price\"\xba\x01\n" +
	"\x0fSetPriceRequest\x12!\n" +
	"\futility_type\x18\x01 \x01(\tR\vutilityType\x12$\n" +
	"\x0eprice_per_unit\x18\x02 \x01(\x01R\fpricePerUnit\x12\x1b\n" +
	"\tunit_name\x18\x03 \x01(\tR\bunitName\x12\x1a\n" +
	"\bcurrency\x18\x04 \x01(\tR\bcurrency\x12%\n" +
	"\x0eeffective_from\x18\x05 \x01(\tR\reffectiveFrom\"I\n" +
	"\x10SetPriceResponse\x125\n" +
	"\x05price\x18\x01 \x01(\v2\x1f.utilitytracker.v1.UtilityPriceR\x05price\"6\n" +
	"\x11ListPricesRequest\x12!\n" +
	"\futility_type\x18\x01 \x01(\tR\vutilityType\"M\n" +
	"\x12ListPricesResponse\x127\n" +
	"\x06prices\x18\x01 \x03(\v2\x1f.utilitytracker.v1.UtilityPriceR\x06prices\"'\n" +
	"\x11ImportFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xb8\x01\n" +
	"\x12ImportFileResponse\x12\x1f\n" +
	"\vsource_path\x18\x01 \x01(\tR\n" +
	"sourcePath\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x02 \x01(\tR\tinvoiceId\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x04 \x01(\tR\x0econtentHashHex\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"l\n" +
	"\x16ImportDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\x12\x14\n" +
	"\x05async\x18\x03 \x01(\bR\x05async\"\xe8\x01\n" +
	"\x17ImportDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x12?\n" +
	"\aresults\x18\x06 \x03(\v2%.utilitytracker.v1.ImportFileResponseR\aresults\"\x8a\x01\n" +
	"\x15ExportInvoicesRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12!\n" +
	"\futility_type\x18\x02 \x01(\tR\vutilityType\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"g\n" +
	"\x15ExportReadingsRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportReadingsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"M\n" +
	"\x15ExportSessionsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\",\n" +
	"\x16ExportSessionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xdc\x05\n" +
	"\x0fInvoicesService\x12h\n" +
	"\x0fParseInvoicePdf\x12).utilitytracker.v1.ParseInvoicePdfRequest\x1a*.utilitytracker.v1.ParseInvoicePdfResponse\x12b\n" +
	"\rCreateInvoice\x12'.utilitytracker.v1.CreateInvoiceRequest\x1a(.utilitytracker.v1.CreateInvoiceResponse\x12_\n" +
	"\fListInvoices\x12&.utilitytracker.v1.ListInvoicesRequest\x1a'.utilitytracker.v1.ListInvoicesResponse\x12b\n" +
	"\rUpdateInvoice\x12'.utilitytracker.v1.UpdateInvoiceRequest\x1a(.utilitytracker.v1.UpdateInvoiceResponse\x12h\n" +
	"\x0fMarkInvoicePaid\x12).utilitytracker.v1.MarkInvoicePaidRequest\x1a*.utilitytracker.v1.MarkInvoicePaidResponse\x12b\n" +
	"\rDeleteInvoice\x12'.utilitytracker.v1.DeleteInvoiceRequest\x1a(.utilitytracker.v1.DeleteInvoiceResponse\x12h\n" +
	"\x0fGetInvoiceStats\x12).utilitytracker.v1.GetInvoiceStatsRequest\x1a*.utilitytracker.v1.GetInvoiceStatsResponse2\xc8\x02\n" +
	"\x14MeterReadingsService\x12b\n" +
	"\rRecordReading\x12'.utilitytracker.v1.RecordReadingRequest\x1a(.utilitytracker.v1.RecordReadingResponse\x12_\n" +
	"\fListReadings\x12&.utilitytracker.v1.ListReadingsRequest\x1a'.utilitytracker.v1.ListReadingsResponse\x12k\n" +
	"\x10GetLatestReading\x12*.utilitytracker.v1.GetLatestReadingRequest\x1a+.utilitytracker.v1.GetLatestReadingResponse2\x98\x03\n" +
	"\x12TimeTrackerService\x12_\n" +
	"\fStartSession\x12&.utilitytracker.v1.StartSessionRequest\x1a'.utilitytracker.v1.StartSessionResponse\x12\\\n" +
	"\vStopSession\x12%.utilitytracker.v1.StopSessionRequest\x1a&.utilitytracker.v1.StopSessionResponse\x12_\n" +
	"\fListSessions\x12&.utilitytracker.v1.ListSessionsRequest\x1a'.utilitytracker.v1.ListSessionsResponse\x12b\n" +
	"\rDeleteSession\x12'.utilitytracker.v1.DeleteSessionRequest\x1a(.utilitytracker.v1.DeleteSessionResponse2\xb0\x02\n" +
	"\x14UtilityPricesService\x12h\n" +
	"\x0fGetCurrentPrice\x12).utilitytracker.v1.GetCurrentPriceRequest\x1a*.utilitytracker.v1.GetCurrentPriceResponse\x12S\n" +
	"\bSetPrice\x12\".utilitytracker.v1.SetPriceRequest\x1a#.utilitytracker.v1.SetPriceResponse\x12Y\n" +
	"\n" +
	"ListPrices\x12$.utilitytracker.v1.ListPricesRequest\x1a%.utilitytracker.v1.ListPricesResponse2\xd4\x01\n" +
	"\rImportService\x12Y\n" +
	"\n" +
	"ImportFile\x12$.utilitytracker.v1.ImportFileRequest\x1a%.utilitytracker.v1.ImportFileResponse\x12h\n" +
	"\x0fImportDirectory\x12).utilitytracker.v1.ImportDirectoryRequest\x1a*.utilitytracker.v1.ImportDirectoryResponse2\xc4\x02\n" +
	"\rExportService\x12e\n" +
	"\x0eExportInvoices\x12(.utilitytracker.v1.ExportInvoicesRequest\x1a).utilitytracker.v1.ExportInvoicesResponse\x12e\n" +
	"\x0eExportReadings\x12(.utilitytracker.v1.ExportReadingsRequest\x1a).utilitytracker.v1.ExportReadingsResponse\x12e\n" +
	"\x0eExportSessions\x12(.utilitytracker.v1.ExportSessionsRequest\x1a).utilitytracker.v1.ExportSessionsResponseBTZRgithub.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1;utilitytrackerv1b\x06proto3"

var (
	file_utilitytracker_v1_utility_tracker_proto_rawDescOnce sync.Once
	file_utilitytracker_v1_utility_tracker_proto_rawDescData []byte
)

func file_utilitytracker_v1_utility_tracker_proto_rawDescGZIP() []byte {
	file_utilitytracker_v1_utility_tracker_proto_rawDescOnce.Do(func() {
		file_utilitytracker_v1_utility_tracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_utilitytracker_v1_utility_tracker_proto_rawDesc), len(file_utilitytracker_v1_utility_tracker_proto_rawDesc)))
	})
	return file_utilitytracker_v1_utility_tracker_proto_rawDescData
}

var file_utilitytracker_v1_utility_tracker_proto_msgTypes = make([]protoimpl.MessageInfo, 52)
var file_utilitytracker_v1_utility_tracker_proto_goTypes = []any{
	(*Invoice)(nil),                  // 0: utilitytracker.v1.Invoice
	(*ParsedInvoice)(nil),            // 1: utilitytracker.v1.ParsedInvoice
	(*ParseInvoicePdfRequest)(nil),   // 2: utilitytracker.v1.ParseInvoicePdfRequest
	(*ParseInvoicePdfResponse)(nil),  // 3: utilitytracker.v1.ParseInvoicePdfResponse
	(*CreateInvoiceRequest)(nil),     // 4: utilitytracker.v1.CreateInvoiceRequest
	(*CreateInvoiceResponse)(nil),    // 5: utilitytracker.v1.CreateInvoiceResponse
	(*ListInvoicesRequest)(nil),      // 6: utilitytracker.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),     // 7: utilitytracker.v1.ListInvoicesResponse
	(*UpdateInvoiceRequest)(nil),     // 8: utilitytracker.v1.UpdateInvoiceRequest
	(*UpdateInvoiceResponse)(nil),    // 9: utilitytracker.v1.UpdateInvoiceResponse
	(*MarkInvoicePaidRequest)(nil),   // 10: utilitytracker.v1.MarkInvoicePaidRequest
	(*MarkInvoicePaidResponse)(nil),  // 11: utilitytracker.v1.MarkInvoicePaidResponse
	(*DeleteInvoiceRequest)(nil),     // 12: utilitytracker.v1.DeleteInvoiceRequest
	(*DeleteInvoiceResponse)(nil),    // 13: utilitytracker.v1.DeleteInvoiceResponse
	(*InvoiceStats)(nil),             // 14: utilitytracker.v1.InvoiceStats
	(*GetInvoiceStatsRequest)(nil),   // 15: utilitytracker.v1.GetInvoiceStatsRequest
	(*GetInvoiceStatsResponse)(nil),  // 16: utilitytracker.v1.GetInvoiceStatsResponse
	(*MeterReading)(nil),             // 17: utilitytracker.v1.MeterReading
	(*RecordReadingRequest)(nil),     // 18: utilitytracker.v1.RecordReadingRequest
	(*RecordReadingResponse)(nil),    // 19: utilitytracker.v1.RecordReadingResponse
	(*ListReadingsRequest)(nil),      // 20: utilitytracker.v1.ListReadingsRequest
	(*ListReadingsResponse)(nil),     // 21: utilitytracker.v1.ListReadingsResponse
	(*GetLatestReadingRequest)(nil),  // 22: utilitytracker.v1.GetLatestReadingRequest
	(*GetLatestReadingResponse)(nil), // 23: utilitytracker.v1.GetLatestReadingResponse
	(*TimeSession)(nil),              // 24: utilitytracker.v1.TimeSession
	(*StartSessionRequest)(nil),      // 25: utilitytracker.v1.StartSessionRequest
	(*StartSessionResponse)(nil),     // 26: utilitytracker.v1.StartSessionResponse
	(*StopSessionRequest)(nil),       // 27: utilitytracker.v1.StopSessionRequest
	(*StopSessionResponse)(nil),      // 28: utilitytracker.v1.StopSessionResponse
	(*ListSessionsRequest)(nil),      // 29: utilitytracker.v1.ListSessionsRequest
	(*ListSessionsResponse)(nil),     // 30: utilitytracker.v1.ListSessionsResponse
	(*DeleteSessionRequest)(nil),     // 31: utilitytracker.v1.DeleteSessionRequest
	(*DeleteSessionResponse)(nil),    // 32: utilitytracker.v1.DeleteSessionResponse
	(*UtilityPrice)(nil),             // 33: utilitytracker.v1.UtilityPrice
	(*GetCurrentPriceRequest)(nil),   // 34: utilitytracker.v1.GetCurrentPriceRequest
	(*GetCurrentPriceResponse)(nil),  // 35: utilitytracker.v1.GetCurrentPriceResponse
	(*SetPriceRequest)(nil),          // 36: utilitytracker.v1.SetPriceRequest
	(*SetPriceResponse)(nil),         // 37: utilitytracker.v1.SetPriceResponse
	(*ListPricesRequest)(nil),        // 38: utilitytracker.v1.ListPricesRequest
	(*ListPricesResponse)(nil),       // 39: utilitytracker.v1.ListPricesResponse
	(*ImportFileRequest)(nil),        // 40: utilitytracker.v1.ImportFileRequest
	(*ImportFileResponse)(nil),       // 41: utilitytracker.v1.ImportFileResponse
	(*ImportDirectoryRequest)(nil),   // 42: utilitytracker.v1.ImportDirectoryRequest
	(*ImportDirectoryResponse)(nil),  // 43: utilitytracker.v1.ImportDirectoryResponse
	(*ExportInvoicesRequest)(nil),    // 44: utilitytracker.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil),   // 45: utilitytracker.v1.ExportInvoicesResponse
	(*ExportReadingsRequest)(nil),    // 46: utilitytracker.v1.ExportReadingsRequest
	(*ExportReadingsResponse)(nil),   // 47: utilitytracker.v1.ExportReadingsResponse
	(*ExportSessionsRequest)(nil),    // 48: utilitytracker.v1.ExportSessionsRequest
	(*ExportSessionsResponse)(nil),   // 49: utilitytracker.v1.ExportSessionsResponse
	nil,                              // 50: utilitytracker.v1.InvoiceStats.PercentageDifferenceEntry
	nil,                              // 51: utilitytracker.v1.InvoiceStats.MonthlyTotalsEntry
}
var file_utilitytracker_v1_utility_tracker_proto_depIdxs = []int32{
	1,  // 0: utilitytracker.v1.ParseInvoicePdfResponse.invoice:type_name -> utilitytracker.v1.ParsedInvoice
	0,  // 1: utilitytracker.v1.CreateInvoiceResponse.invoice:type_name -> utilitytracker.v1.Invoice
	0,  // 2: utilitytracker.v1.ListInvoicesResponse.invoices:type_name -> utilitytracker.v1.Invoice
	0,  // 3: utilitytracker.v1.UpdateInvoiceRequest.invoice:type_name -> utilitytracker.v1.Invoice
	0,  // 4: utilitytracker.v1.UpdateInvoiceResponse.invoice:type_name -> utilitytracker.v1.Invoice
	0,  // 5: utilitytracker.v1.MarkInvoicePaidResponse.invoice:type_name -> utilitytracker.v1.Invoice
	50, // 6: utilitytracker.v1.InvoiceStats.percentage_difference:type_name -> utilitytracker.v1.InvoiceStats.PercentageDifferenceEntry
	51, // 7: utilitytracker.v1.InvoiceStats.monthly_totals:type_name -> utilitytracker.v1.InvoiceStats.MonthlyTotalsEntry
	14, // 8: utilitytracker.v1.GetInvoiceStatsResponse.stats:type_name -> utilitytracker.v1.InvoiceStats
	17, // 9: utilitytracker.v1.RecordReadingResponse.reading:type_name -> utilitytracker.v1.MeterReading
	17, // 10: utilitytracker.v1.ListReadingsResponse.readings:type_name -> utilitytracker.v1.MeterReading
	17, // 11: utilitytracker.v1.GetLatestReadingResponse.reading:type_name -> utilitytracker.v1.MeterReading
	24, // 12: utilitytracker.v1.StartSessionResponse.session:type_name -> utilitytracker.v1.TimeSession
	24, // 13: utilitytracker.v1.StopSessionResponse.session:type_name -> utilitytracker.v1.TimeSession
	24, // 14: utilitytracker.v1.ListSessionsResponse.sessions:type_name -> utilitytracker.v1.TimeSession
	33, // 15: utilitytracker.v1.GetCurrentPriceResponse.price:type_name -> utilitytracker.v1.UtilityPrice
	33, // 16: utilitytracker.v1.SetPriceResponse.price:type_name -> utilitytracker.v1.UtilityPrice
	33, // 17: utilitytracker.v1.ListPricesResponse.prices:type_name -> utilitytracker.v1.UtilityPrice
	41, // 18: utilitytracker.v1.ImportDirectoryResponse.results:type_name -> utilitytracker.v1.ImportFileResponse
	2,  // 19: utilitytracker.v1.InvoicesService.ParseInvoicePdf:input_type -> utilitytracker.v1.ParseInvoicePdfRequest
	4,  // 20: utilitytracker.v1.InvoicesService.CreateInvoice:input_type -> utilitytracker.v1.CreateInvoiceRequest
	6,  // 21: utilitytracker.v1.InvoicesService.ListInvoices:input_type -> utilitytracker.v1.ListInvoicesRequest
	8,  // 22: utilitytracker.v1.InvoicesService.UpdateInvoice:input_type -> utilitytracker.v1.UpdateInvoiceRequest
	10, // 23: utilitytracker.v1.InvoicesService.MarkInvoicePaid:input_type -> utilitytracker.v1.MarkInvoicePaidRequest
	12, // 24: utilitytracker.v1.InvoicesService.DeleteInvoice:input_type -> utilitytracker.v1.DeleteInvoiceRequest
	15, // 25: utilitytracker.v1.InvoicesService.GetInvoiceStats:input_type -> utilitytracker.v1.GetInvoiceStatsRequest
	18, // 26: utilitytracker.v1.MeterReadingsService.RecordReading:input_type -> utilitytracker.v1.RecordReadingRequest
	20, // 27: utilitytracker.v1.MeterReadingsService.ListReadings:input_type -> utilitytracker.v1.ListReadingsRequest
	22, // 28: utilitytracker.v1.MeterReadingsService.GetLatestReading:input_type -> utilitytracker.v1.GetLatestReadingRequest
	25, // 29: utilitytracker.v1.TimeTrackerService.StartSession:input_type -> utilitytracker.v1.StartSessionRequest
	27, // 30: utilitytracker.v1.TimeTrackerService.StopSession:input_type -> utilitytracker.v1.StopSessionRequest
	29, // 31: utilitytracker.v1.TimeTrackerService.ListSessions:input_type -> utilitytracker.v1.ListSessionsRequest
	31, // 32: utilitytracker.v1.TimeTrackerService.DeleteSession:input_type -> utilitytracker.v1.DeleteSessionRequest
	34, // 33: utilitytracker.v1.UtilityPricesService.GetCurrentPrice:input_type -> utilitytracker.v1.GetCurrentPriceRequest
	36, // 34: utilitytracker.v1.UtilityPricesService.SetPrice:input_type -> utilitytracker.v1.SetPriceRequest
	38, // 35: utilitytracker.v1.UtilityPricesService.ListPrices:input_type -> utilitytracker.v1.ListPricesRequest
	40, // 36: utilitytracker.v1.ImportService.ImportFile:input_type -> utilitytracker.v1.ImportFileRequest
	42, // 37: utilitytracker.v1.ImportService.ImportDirectory:input_type -> utilitytracker.v1.ImportDirectoryRequest
	44, // 38: utilitytracker.v1.ExportService.ExportInvoices:input_type -> utilitytracker.v1.ExportInvoicesRequest
	46, // 39: utilitytracker.v1.ExportService.ExportReadings:input_type -> utilitytracker.v1.ExportReadingsRequest
	48, // 40: utilitytracker.v1.ExportService.ExportSessions:input_type -> utilitytracker.v1.ExportSessionsRequest
	3,  // 41: utilitytracker.v1.InvoicesService.ParseInvoicePdf:output_type -> utilitytracker.v1.ParseInvoicePdfResponse
	5,  // 42: utilitytracker.v1.InvoicesService.CreateInvoice:output_type -> utilitytracker.v1.CreateInvoiceResponse
	7,  // 43: utilitytracker.v1.InvoicesService.ListInvoices:output_type -> utilitytracker.v1.ListInvoicesResponse
	9,  // 44: utilitytracker.v1.InvoicesService.UpdateInvoice:output_type -> utilitytracker.v1.UpdateInvoiceResponse
	11, // 45: utilitytracker.v1.InvoicesService.MarkInvoicePaid:output_type -> utilitytracker.v1.MarkInvoicePaidResponse
	13, // 46: utilitytracker.v1.InvoicesService.DeleteInvoice:output_type -> utilitytracker.v1.DeleteInvoiceResponse
	16, // 47: utilitytracker.v1.InvoicesService.GetInvoiceStats:output_type -> utilitytracker.v1.GetInvoiceStatsResponse
	19, // 48: utilitytracker.v1.MeterReadingsService.RecordReading:output_type -> utilitytracker.v1.RecordReadingResponse
	21, // 49: utilitytracker.v1.MeterReadingsService.ListReadings:output_type -> utilitytracker.v1.ListReadingsResponse
	23, // 50: utilitytracker.v1.MeterReadingsService.GetLatestReading:output_type -> utilitytracker.v1.GetLatestReadingResponse
	26, // 51: utilitytracker.v1.TimeTrackerService.StartSession:output_type -> utilitytracker.v1.StartSessionResponse
	28, // 52: utilitytracker.v1.TimeTrackerService.StopSession:output_type -> utilitytracker.v1.StopSessionResponse
	30, // 53: utilitytracker.v1.TimeTrackerService.ListSessions:output_type -> utilitytracker.v1.ListSessionsResponse
	32, // 54: utilitytracker.v1.TimeTrackerService.DeleteSession:output_type -> utilitytracker.v1.DeleteSessionResponse
	35, // 55: utilitytracker.v1.UtilityPricesService.GetCurrentPrice:output_type -> utilitytracker.v1.GetCurrentPriceResponse
	37, // 56: utilitytracker.v1.UtilityPricesService.SetPrice:output_type -> utilitytracker.v1.SetPriceResponse
	39, // 57: utilitytracker.v1.UtilityPricesService.ListPrices:output_type -> utilitytracker.v1.ListPricesResponse
	41, // 58: utilitytracker.v1.ImportService.ImportFile:output_type -> utilitytracker.v1.ImportFileResponse
	43, // 59: utilitytracker.v1.ImportService.ImportDirectory:output_type -> utilitytracker.v1.ImportDirectoryResponse
	45, // 60: utilitytracker.v1.ExportService.ExportInvoices:output_type -> utilitytracker.v1.ExportInvoicesResponse
	47, // 61: utilitytracker.v1.ExportService.ExportReadings:output_type -> utilitytracker.v1.ExportReadingsResponse
	49, // 62: utilitytracker.v1.ExportService.ExportSessions:output_type -> utilitytracker.v1.ExportSessionsResponse
	41, // [41:63] is the sub-list for method output_type
	19, // [19:41] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:19] is the sub-list for field type_name
}

func init() { file_utilitytracker_v1_utility_tracker_proto_init() }
func file_utilitytracker_v1_utility_tracker_proto_init() {
	if File_utilitytracker_v1_utility_tracker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_utilitytracker_v1_utility_tracker_proto_rawDesc), len(file_utilitytracker_v1_utility_tracker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   52,
			NumExtensions: 0,
			NumServices:   6,
		},
		GoTypes:           file_utilitytracker_v1_utility_tracker_proto_goTypes,
		DependencyIndexes: file_utilitytracker_v1_utility_tracker_proto_depIdxs,
		MessageInfos:      file_utilitytracker_v1_utility_tracker_proto_msgTypes,
	}.Build()
	File_utilitytracker_v1_utility_tracker_proto = out.File
	file_utilitytracker_v1_utility_tracker_proto_goTypes = nil
	file_utilitytracker_v1_utility_tracker_proto_depIdxs = nil
}
