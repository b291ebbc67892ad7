package numerology

// profiles is the static knowledge base of the thirteen life path
// personalities (1-9 plus the master numbers). LifePathNumber is filled
// in by Lookup so the same base entry can serve as the fallback.
var profiles = map[int]Profile{
	1: {
		Title:           "SỐ 1: NGƯỜI TIÊN PHONG",
		Overview:        "Con sở hữu ý chí mạnh mẽ, độc lập và luôn muốn dẫn đầu. Con là người tự chủ, quyết đoán và không ngại thử thách mới.",
		LearningStyle:   "Tự học, tự nghiên cứu, học qua dự án cá nhân. Thích được giao 'nhiệm vụ' hơn là bài tập đơn thuần.",
		Aptitude:        "Cao khi được làm việc độc lập. Dễ mất tập trung khi bị ép làm điều không thích hoặc môi trường gò bó.",
		Motivation:      "Mong muốn được công nhận, chiến thắng, trở thành người giỏi nhất. Thích cạnh tranh lành mạnh.",
		MathApproach:    "Logic, thẳng thắn, tìm cách giải quyết nhanh và hiệu quả nhất. Thích các bài toán có đáp án duy nhất và rõ ràng.",
		Strengths:       []string{"Tư duy độc lập, không đi theo lối mòn.", "Quyết tâm cao, theo đuổi mục tiêu đến cùng.", "Có khả năng lãnh đạo nhóm học tập."},
		Challenges:      []string{"Cái tôi cao, đôi khi khó tiếp thu ý kiến.", "Thiếu kiên nhẫn, khó lắng nghe người khác.", "Dễ trở nên hung hăng nếu bị phê bình."},
		EffectiveMethod: "Đặt mục tiêu rõ ràng, thách thức bản thân. Tự tạo các 'nhiệm vụ' cá nhân thay vì làm theo lệnh.",
		Environment:     "Không gian riêng, yên tĩnh. Môi trường tự do lựa chọn cách học, có cơ hội thể hiện năng lực.",
		Conclusion:      "Con là một nhà lãnh đạo bẩm sinh. Hãy khuyến khích con tự chủ trong việc học, đặt ra các mục tiêu cao để chinh phục.",
	},
	2: {
		Title:           "SỐ 2: NGƯỜI HÒA GIẢI",
		Overview:        "Con là người nhạy cảm, tinh tế, giàu lòng trắc ẩn và yêu hòa bình. Con thích sự kết nối và hỗ trợ người khác.",
		LearningStyle:   "Học nhóm, học có bạn đồng hành. Học qua việc giải thích cho người khác.",
		Aptitude:        "Cao trong môi trường yên tĩnh, ổn định. Dễ bị phân tâm bởi cảm xúc và mối quan hệ xung quanh.",
		Motivation:      "Mong muốn được giúp đỡ, kết nối và nhận được sự yêu thương. Thích được công nhận từ thầy cô và bạn bè.",
		MathApproach:    "Tuần tự, cẩn thận, tỉ mỉ. Thích những bài toán có hướng dẫn rõ ràng từng bước.",
		Strengths:       []string{"Khả năng lắng nghe và thấu cảm tuyệt vời.", "Giỏi làm việc nhóm, kết nối mọi người.", "Trực giác tốt, nhạy bén với cảm xúc."},
		Challenges:      []string{"Quá nhạy cảm, dễ bị tổn thương bởi lời nói.", "Thiếu quyết đoán, hay do dự.", "Dễ lo lắng thái quá trước kỳ thi."},
		EffectiveMethod: "Học cùng bạn, giải thích lại cho bạn để hiểu sâu hơn. Sử dụng phương pháp học từng bước, có hệ thống.",
		Environment:     "Hài hòa, không căng thẳng. Có sự hỗ trợ từ bạn bè, thầy cô.",
		Conclusion:      "Con học tốt nhất khi cảm thấy an toàn và được yêu thương. Hãy tạo môi trường học tập nhẹ nhàng, khuyến khích học nhóm.",
	},
	3: {
		Title:           "SỐ 3: NGƯỜI TRUYỀN CẢM HỨNG",
		Overview:        "Con là người sáng tạo, hoạt ngôn, lạc quan và tràn đầy năng lượng. Con thích sự vui vẻ và ghét sự nhàm chán.",
		LearningStyle:   "Học qua hình ảnh, âm nhạc, câu chuyện, trò chơi (Gamification). Thích môi trường vui vẻ, năng động.",
		Aptitude:        "Thấp nếu bài học nhàm chán. Dễ bị phân tâm bởi các kích thích xung quanh.",
		Motivation:      "Niềm vui, sự hứng thú, được thể hiện bản thân. Thích học những thứ có thể trình bày, chia sẻ.",
		MathApproach:    "Sáng tạo, tìm những lối đi bất ngờ. Không thích đi theo khuôn mẫu. Thường 'nhảy bước' trong suy nghĩ.",
		Strengths:       []string{"Óc sáng tạo và trí tưởng tượng bay bổng.", "Kỹ năng giao tiếp và diễn đạt xuất sắc.", "Lạc quan, luôn mang năng lượng tích cực."},
		Challenges:      []string{"Dễ mất tập trung, cả thèm chóng chán.", "Thiếu kỷ luật, hay trì hoãn công việc.", "Nói nhiều hơn làm, đôi khi hời hợt."},
		EffectiveMethod: "Biến học tập thành trò chơi. Sử dụng nhiều phương tiện đa phương tiện (video, hình ảnh).",
		Environment:     "Vui vẻ, năng động, đầy màu sắc. Cho phép di chuyển, không ngồi yên một chỗ.",
		Conclusion:      "Hãy để trí tưởng tượng của con bay xa. Toán học sẽ thú vị hơn qua các câu đố vui và hình ảnh sinh động.",
	},
	4: {
		Title:           "SỐ 4: NGƯỜI XÂY DỰNG",
		Overview:        "Con là người thực tế, kỷ luật, chi tiết và đáng tin cậy. Con thích sự rõ ràng, trật tự và logic chặt chẽ.",
		LearningStyle:   "Học có cấu trúc rõ ràng, theo quy trình, từng bước một. Thích lịch trình ổn định, lặp lại đều đặn.",
		Aptitude:        "Cao, đặc biệt với những công việc chi tiết. Có thể tập trung lâu nếu biết rõ mục tiêu.",
		Motivation:      "Muốn xây dựng nền móng vững chắc, thấy kết quả cụ thể từng bước. Thích sự ổn định và có thể dự đoán được.",
		MathApproach:    "Tuần tự, có hệ thống, từng bước một. Không bỏ qua bất kỳ bước nào. Kiểm tra lại nhiều lần để đảm bảo chính xác.",
		Strengths:       []string{"Làm việc chăm chỉ, kiên định.", "Tổ chức tốt, có kế hoạch rõ ràng.", "Chi tiết, cẩn thận, chính xác cao."},
		Challenges:      []string{"Cứng nhắc, khó thay đổi khi đã quen.", "Quá lo lắng về chi tiết, thiếu cái nhìn tổng thể.", "Sợ rủi ro, ngại ý kiến khác."},
		EffectiveMethod: "Lập kế hoạch học tập chi tiết. Chia nhỏ mục tiêu thành các bước nhỏ. Sử dụng checklist.",
		Environment:     "Có cấu trúc rõ ràng, ổn định. Quy tắc nhất quán, không thay đổi đột ngột.",
		Conclusion:      "Con là nền tảng vững chắc của mọi việc. Hãy cung cấp lộ trình học tập rõ ràng, logic để con phát huy tối đa.",
	},
	5: {
		Title:           "SỐ 5: NGƯỜI TỰ DO",
		Overview:        "Con yêu tự do, thích khám phá, đa tài và linh hoạt. Con ghét sự gò bó và luôn tìm kiếm trải nghiệm mới.",
		LearningStyle:   "Học qua trải nghiệm, thám hiểm, khám phá. Cần sự đa dạng, thay đổi liên tục.",
		Aptitude:        "Rất thấp với những chủ đề nhàm chán. Dễ bị bồn chồn, muốn chuyển sang thứ khác.",
		Motivation:      "Khám phá mới mẻ, trải nghiệm đa dạng, được tự do chọn lựa. Thích phiêu lưu và bất ngờ.",
		MathApproach:    "Thử nhiều cách, nhảy qua nhảy lại. Không theo trình tự cố định. Thích giải quyết nhanh để chuyển sang vấn đề khác.",
		Strengths:       []string{"Thích nghi nhanh với môi trường mới.", "Linh hoạt, đa tài.", "Tò mò, ham học hỏi."},
		Challenges:      []string{"Thiếu kiên nhẫn, không kiên định.", "Dễ bồn chồn, không chịu ràng buộc.", "Dễ phân tâm bởi nhiều thứ cùng lúc."},
		EffectiveMethod: "Thay đổi phương pháp học thường xuyên. Kết hợp nhiều môn học, nhiều kỹ năng.",
		Environment:     "Tự do, không gò bó. Nhiều sự lựa chọn, tính bất ngờ cao.",
		Conclusion:      "Đừng ép con ngồi yên một chỗ. Hãy cho con thấy toán học là một cuộc phiêu lưu thú vị để khám phá thế giới.",
	},
	6: {
		Title:           "SỐ 6: NGƯỜI CHĂM SÓC",
		Overview:        "Con là người có trách nhiệm, yêu thương, quan tâm đến người khác. Con luôn mong muốn sự hoàn hảo và hài hòa.",
		LearningStyle:   "Học qua việc chăm sóc, giúp đỡ người khác. Thích các bài học có ý nghĩa nhân văn.",
		Aptitude:        "Cao khi học những gì có ý nghĩa với gia đình/cộng đồng. Dễ bị phân tâm bởi nhu cầu chăm sóc người khác.",
		Motivation:      "Giúp đỡ người khác, làm điều có ý nghĩa, được yêu thương. Muốn trở thành người có ích.",
		MathApproach:    "Liên hệ với cuộc sống thực tế. Ứng dụng vào việc giúp đỡ người khác. Giải quyết vấn đề có tính nhân văn.",
		Strengths:       []string{"Giàu lòng trắc ẩn, quan tâm người khác.", "Trách nhiệm cao, chu đáo.", "Sáng tạo nghệ thuật, thẩm mỹ cao."},
		Challenges:      []string{"Lo lắng quá mức, đặc biệt cho người khác.", "Can thiệp thái quá, ôm đồm.", "Dễ bị lợi dụng lòng tốt."},
		EffectiveMethod: "Học qua việc dạy lại cho người khác. Tham gia các dự án cộng đồng, tình nguyện.",
		Environment:     "Ấm áp, hỗ trợ lẫn nhau. Có ý nghĩa nhân văn.",
		Conclusion:      "Con học giỏi nhất khi cảm thấy kiến thức đó giúp ích cho mọi người. Hãy gắn toán học với các giá trị cuộc sống.",
	},
	7: {
		Title:           "SỐ 7: NGƯỜI TRÍ TUỆ",
		Overview:        "Con là người sâu sắc, thích phân tích, tìm tòi chân lý. Con có xu hướng đặt câu hỏi 'Tại sao' và muốn hiểu bản chất.",
		LearningStyle:   "Học qua nghiên cứu sâu, phân tích, tìm hiểu bản chất. Cần không gian yên tĩnh để suy ngẫm.",
		Aptitude:        "Rất cao khi học một mình, không bị làm phiền. Có thể tập trung sâu trong thời gian dài.",
		Motivation:      "Hiểu 'tại sao', khám phá bí ẩn, đạt đến sự thật. Thích tìm hiểu bản chất, nguồn gốc vấn đề.",
		MathApproach:    "Phân tích từng chi tiết, tìm hiểu bản chất. Cần biết 'tại sao' trước khi làm. Suy ngẫm kỹ trước khi đưa ra kết luận.",
		Strengths:       []string{"Phân tích sâu sắc, logic.", "Trực giác mạnh mẽ.", "Độc lập tinh thần, tự học tốt."},
		Challenges:      []string{"Xu hướng cô độc, xa cách.", "Hoài nghi quá mức, khó tin người.", "Khó chia sẻ cảm xúc, suy nghĩ."},
		EffectiveMethod: "Nghiên cứu chuyên sâu, đọc nhiều sách. Suy ngẫm, chiêm nghiệm một mình.",
		Environment:     "Yên tĩnh, sâu lắng. Không bị làm phiền, có không gian riêng.",
		Conclusion:      "Con là một nhà tư tưởng. Hãy cung cấp sách, tài liệu chuyên sâu và không gian riêng để con tự do khám phá tri thức.",
	},
	8: {
		Title:           "SỐ 8: NGƯỜI LÃNH ĐẠO",
		Overview:        "Con mạnh mẽ, thực tế, có tố chất kinh doanh và lãnh đạo. Con nhạy bén với các con số, tài chính và thích thành công.",
		LearningStyle:   "Học có mục tiêu rõ ràng, đo lường được thành công. Thích học những gì mang lại lợi ích cụ thể.",
		Aptitude:        "Cao khi thấy mục tiêu rõ ràng và có ý nghĩa. Kiên trì với những gì mang lại thành công.",
		Motivation:      "Thành công, giàu có, quyền lực, danh vọng. Muốn đạt được vị thế cao.",
		MathApproach:    "Hiệu quả, nhanh chóng, tập trung kết quả. Áp dụng chiến lược, tính toán lợi ích.",
		Strengths:       []string{"Lãnh đạo mạnh mẽ, quyết đoán.", "Tham vọng lớn, không ngừng nỗ lực.", "Tổ chức tốt, quản lý thời gian hiệu quả."},
		Challenges:      []string{"Háo danh, thích quyền lực quá mức.", "Vật chất hóa giá trị học tập.", "Bỏ bê cảm xúc, mối quan hệ."},
		EffectiveMethod: "Đặt mục tiêu cụ thể, đo lường được. Học những gì có giá trị thực tế.",
		Environment:     "Môi trường chuyên nghiệp, nghiêm túc. Có cơ hội thể hiện năng lực lãnh đạo.",
		Conclusion:      "Hãy đặt ra những mục tiêu thách thức và phần thưởng xứng đáng. Con sẽ nỗ lực hết mình để chinh phục đỉnh cao.",
	},
	9: {
		Title:           "SỐ 9: NGƯỜI NHÂN ÁI",
		Overview:        "Con bao dung, nhân hậu, có tầm nhìn lớn và lý tưởng cao đẹp. Con muốn cống hiến cho cộng đồng và thế giới.",
		LearningStyle:   "Học có ý nghĩa nhân văn sâu sắc, liên quan đến việc giúp đỡ thế giới. Thích học những gì có giá trị cho cộng đồng.",
		Aptitude:        "Cao khi học những gì có ý nghĩa lớn lao. Khó tập trung với những điều nhỏ nhặt, chi tiết.",
		Motivation:      "Cống hiến cho cộng đồng, thay đổi thế giới, giúp đỡ người khác. Lý tưởng cao đẹp, tính nhân văn.",
		MathApproach:    "Nhìn tổng thể, kết nối với bức tranh lớn. Tìm ý nghĩa sâu xa của vấn đề.",
		Strengths:       []string{"Lòng trắc ẩn sâu sắc, vị tha.", "Nhìn xa, có tầm nhìn rộng.", "Sáng tạo, trí tuệ cảm xúc cao."},
		Challenges:      []string{"Lãnh đạo bằng tấm gương, truyền cảm hứng.", "Dễ thất vọng khi không đạt được lý tưởng.", "Hy sinh thái quá, quên bản thân."},
		EffectiveMethod: "Kết nối kiến thức với vấn đề xã hội. Học qua dự án cộng đồng.",
		Environment:     "Có ý nghĩa nhân văn sâu sắc. Liên quan đến cộng đồng, xã hội.",
		Conclusion:      "Con có trái tim lớn. Hãy giúp con thấy được ý nghĩa cao đẹp của việc học đối với việc xây dựng một thế giới tốt đẹp hơn.",
	},
	11: {
		Title:           "SỐ 11: BẬC THẦY TRỰC GIÁC",
		Overview:        "Con sở hữu trực giác nhạy bén, khả năng tâm linh và thấu hiểu sâu sắc. Con là người truyền cảm hứng bẩm sinh.",
		LearningStyle:   "Học qua trực giác, cảm nhận, kết nối tâm linh. Nhận biết patterns (mẫu hình) một cách trực quan.",
		Aptitude:        "Cao khi môi trường yên bình, tâm linh. Dễ bị áp lực cao làm mất tập trung.",
		Motivation:      "Giác ngộ, kết nối vũ trụ qua con số, truyền cảm hứng. Tìm kiếm sự thật sâu xa, ý nghĩa siêu hình.",
		MathApproach:    "Trực giác trước, logic sau. Thấy mẫu hình, quy luật một cách trực quan.",
		Strengths:       []string{"Trực giác siêu phàm, nhạy bén cực độ.", "Khả năng nhận dạng patterns xuất sắc.", "Sáng tạo phi thường."},
		Challenges:      []string{"Căng thẳng thần kinh, áp lực kỳ vọng cao.", "Quá nhạy cảm với môi trường xung quanh.", "Mộng mơ, thiếu thực tế."},
		EffectiveMethod: "Tin vào trực giác, cảm nhận của mình. Học qua thiền định, yoga, mindfulness.",
		Environment:     "Yên bình, tâm linh. Khuyến khích trực giác, cảm nhận.",
		Conclusion:      "Con có món quà đặc biệt là trực giác. Hãy khuyến khích con tin vào cảm nhận của mình trong cả học tập và cuộc sống.",
	},
	22: {
		Title:           "SỐ 22: KIẾN TRÚC SƯ ĐẠI TÀI",
		Overview:        "Con kết hợp tầm nhìn xa của số 11 và tính thực tế của số 4. Con có khả năng biến những giấc mơ lớn thành hiện thực.",
		LearningStyle:   "Học qua dự án lớn, kế hoạch dài hạn, xây dựng hệ thống. Thích các mục tiêu vĩ đại có tính thực tiễn cao.",
		Aptitude:        "Rất cao với các dự án lớn, có ý nghĩa. Kiên trì dài hạn với mục tiêu vĩ đại.",
		Motivation:      "Xây dựng nền móng cho tương lai, tạo ra điều vĩ đại. Tác động lớn, thay đổi hệ thống.",
		MathApproach:    "Hệ thống + tầm nhìn. Từng bước nhưng hướng đến mục tiêu lớn. Kết hợp trực giác và logic.",
		Strengths:       []string{"Tham vọng lớn có tính thực tế.", "Tổ chức xuất sắc, quản lý dự án tốt.", "Kiên định phi thường với mục tiêu lớn."},
		Challenges:      []string{"Áp lực cao từ bản thân và người khác.", "Căng thẳng vì mục tiêu quá lớn.", "Có thể trở nên cứng nhắc."},
		EffectiveMethod: "Lập kế hoạch dài hạn, từng giai đoạn. Học qua các dự án lớn, có tác động rộng.",
		Environment:     "Có mục tiêu lớn, tầm ảnh hưởng rộng. Môi trường nghiêm túc, chuyên nghiệp.",
		Conclusion:      "Con có tiềm năng làm nên những điều vĩ đại. Hãy giúp con chia nhỏ những giấc mơ lớn thành kế hoạch hành động cụ thể.",
	},
	33: {
		Title:           "SỐ 33: NGƯỜI CHỮA LÀNH",
		Overview:        "Con mang năng lượng yêu thương vô điều kiện và sự hy sinh. Con muốn chữa lành và nuôi dưỡng tâm hồn mọi người.",
		LearningStyle:   "Học qua sự yêu thương, chăm sóc, chữa lành. Kết hợp nghệ thuật và sự tận tâm.",
		Aptitude:        "Cao khi được chăm sóc, nuôi dưỡng người khác. Nhạy cảm với nỗi đau của người khác.",
		Motivation:      "Mang lại tình yêu, sự chữa lành cho thế giới. Phục vụ cộng đồng với tình yêu vô điều kiện.",
		MathApproach:    "Tiếp cận bằng trái tim, sự thấu hiểu. Tìm kiếm sự hài hòa và vẻ đẹp trong các con số.",
		Strengths:       []string{"Tình yêu thương bao la, vô điều kiện.", "Khả năng chữa lành, nuôi dưỡng.", "Sáng tạo và nghệ thuật cao."},
		Challenges:      []string{"Quá hy sinh bản thân, quên mình.", "Gánh vác quá nhiều nỗi đau của người khác.", "Dễ bị cảm xúc chi phối."},
		EffectiveMethod: "Kết hợp học tập với nghệ thuật, chữa lành. Tham gia các hoạt động thiện nguyện.",
		Environment:     "Tràn đầy tình yêu thương, sự chấp nhận. Không cạnh tranh, chỉ có sự hỗ trợ.",
		Conclusion:      "Tình yêu thương là sức mạnh lớn nhất của con. Hãy dùng nó để lan tỏa niềm vui và sự chữa lành trong học tập và cuộc sống.",
	},
}
