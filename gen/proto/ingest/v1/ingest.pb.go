// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ingest/v1/ingest.proto

package ingestv1

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

type EnqueueResumeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentRef   string                 `protobuf:"bytes,2,opt,name=document_ref,json=documentRef,proto3" json:"document_ref,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueResumeRequest) Reset() {
	*x = EnqueueResumeRequest{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueResumeRequest) ProtoMessage() {}

func (x *EnqueueResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueResumeRequest.ProtoReflect.Descriptor instead.
func (*EnqueueResumeRequest) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *EnqueueResumeRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *EnqueueResumeRequest) GetDocumentRef() string {
	if x != nil {
		return x.DocumentRef
	}
	return ""
}

type EnqueueResumeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enqueued      bool                   `protobuf:"varint,1,opt,name=enqueued,proto3" json:"enqueued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueResumeResponse) Reset() {
	*x = EnqueueResumeResponse{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueResumeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueResumeResponse) ProtoMessage() {}

func (x *EnqueueResumeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueResumeResponse.ProtoReflect.Descriptor instead.
func (*EnqueueResumeResponse) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *EnqueueResumeResponse) GetEnqueued() bool {
	if x != nil {
		return x.Enqueued
	}
	return false
}

type GetReadinessRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReadinessRequest) Reset() {
	*x = GetReadinessRequest{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReadinessRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReadinessRequest) ProtoMessage() {}

func (x *GetReadinessRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReadinessRequest.ProtoReflect.Descriptor instead.
func (*GetReadinessRequest) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{2}
}

func (x *GetReadinessRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetReadinessResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// One of INCOMPLETE, PROCESSING, PARTIAL, COMPLETE.
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReadinessResponse) Reset() {
	*x = GetReadinessResponse{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReadinessResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReadinessResponse) ProtoMessage() {}

func (x *GetReadinessResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReadinessResponse.ProtoReflect.Descriptor instead.
func (*GetReadinessResponse) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{3}
}

func (x *GetReadinessResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

var File_ingest_v1_ingest_proto protoreflect.FileDescriptor

const file_ingest_v1_ingest_proto_rawDesc = "" +
	"\n" +
	"\x16ingest/v1/ingest.proto\x12\tingest.v1\"R\n" +
	"\x14EnqueueResumeRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12!\n" +
	"\fdocument_ref\x18\x02 \x01(\tR\vdocumentRef\"3\n" +
	"\x15EnqueueResumeResponse\x12\x1a\n" +
	"\benqueued\x18\x01 \x01(\bR\benqueued\".\n" +
	"\x13GetReadinessRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\".\n" +
	"\x14GetReadinessResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status2\xb7\x01\n" +
	"\x10IngestionService\x12R\n" +
	"\rEnqueueResume\x12\x1f.ingest.v1.EnqueueResumeRequest\x1a .ingest.v1.EnqueueResumeResponse\x12O\n" +
	"\fGetReadiness\x12\x1e.ingest.v1.GetReadinessRequest\x1a\x1f.ingest.v1.GetReadinessResponseBCZAgithub.com/kunle-oseni/resume-ingest/gen/proto/ingest/v1;ingestv1b\x06proto3"

var (
	file_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_ingest_v1_ingest_proto_rawDescData []byte
)

func file_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ingest_v1_ingest_proto_rawDesc), len(file_ingest_v1_ingest_proto_rawDesc)))
	})
	return file_ingest_v1_ingest_proto_rawDescData
}

var file_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_ingest_v1_ingest_proto_goTypes = []any{
	(*EnqueueResumeRequest)(nil),  // 0: ingest.v1.EnqueueResumeRequest
	(*EnqueueResumeResponse)(nil), // 1: ingest.v1.EnqueueResumeResponse
	(*GetReadinessRequest)(nil),   // 2: ingest.v1.GetReadinessRequest
	(*GetReadinessResponse)(nil),  // 3: ingest.v1.GetReadinessResponse
}
var file_ingest_v1_ingest_proto_depIdxs = []int32{
	0, // 0: ingest.v1.IngestionService.EnqueueResume:input_type -> ingest.v1.EnqueueResumeRequest
	2, // 1: ingest.v1.IngestionService.GetReadiness:input_type -> ingest.v1.GetReadinessRequest
	1, // 2: ingest.v1.IngestionService.EnqueueResume:output_type -> ingest.v1.EnqueueResumeResponse
	3, // 3: ingest.v1.IngestionService.GetReadiness:output_type -> ingest.v1.GetReadinessResponse
	2, // [2:4] is the sub-list for method output_type
	0, // [0:2] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_ingest_v1_ingest_proto_init() }
func file_ingest_v1_ingest_proto_init() {
	if File_ingest_v1_ingest_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ingest_v1_ingest_proto_rawDesc), len(file_ingest_v1_ingest_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_ingest_v1_ingest_proto = out.File
	file_ingest_v1_ingest_proto_goTypes = nil
	file_ingest_v1_ingest_proto_depIdxs = nil
}
